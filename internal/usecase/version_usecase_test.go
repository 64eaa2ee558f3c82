package usecase

import (
	"context"
	"errors"
	"testing"

	"catering_xpto/internal/domain/entities"
	mock_interfaces "catering_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVersionUseCase_CreateVersion(t *testing.T) {
	t.Run("first version starts at 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, invoiceRepo, itemRepo)

		inv := storedInvoice()
		inv.Totals = entities.EstimateTotals{Subtotal: 10000, TaxAmount: 900, TotalAmount: 10900}
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		itemRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.LineItem{{ID: "item-1"}}, nil)
		versionRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)

		versionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.EstimateVersion) (entities.EstimateVersion, error) {
				if v.VersionNumber != 1 {
					t.Fatalf("expected version number 1, got %d", v.VersionNumber)
				}
				if v.Status != entities.VersionActive {
					t.Fatalf("expected active snapshot, got %s", v.Status)
				}
				if v.TotalAmount != 10900 {
					t.Fatalf("expected snapshot total 10900, got %d", v.TotalAmount)
				}
				if len(v.Items) != 1 {
					t.Fatalf("expected 1 snapshotted item, got %d", len(v.Items))
				}
				return v, nil
			})

		if _, err := uc.CreateVersion(context.Background(), "inv-1", "initial quote"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supersedes the active snapshot before creating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, invoiceRepo, itemRepo)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(), nil)
		itemRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		versionRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.EstimateVersion{
			{ID: "ver-1", InvoiceID: "inv-1", VersionNumber: 1, Status: entities.VersionSuperseded},
			{ID: "ver-2", InvoiceID: "inv-1", VersionNumber: 2, Status: entities.VersionActive},
		}, nil)

		supersede := versionRepo.EXPECT().UpdateStatus(gomock.Any(), "ver-2", entities.VersionSuperseded).
			Return(entities.EstimateVersion{ID: "ver-2", Status: entities.VersionSuperseded}, nil)

		versionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).After(supersede).DoAndReturn(
			func(_ context.Context, v entities.EstimateVersion) (entities.EstimateVersion, error) {
				if v.VersionNumber != 3 {
					t.Fatalf("expected version number 3, got %d", v.VersionNumber)
				}
				return v, nil
			})

		if _, err := uc.CreateVersion(context.Background(), "inv-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supersede failure aborts the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, invoiceRepo, itemRepo)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(storedInvoice(), nil)
		itemRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		versionRepo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.EstimateVersion{
			{ID: "ver-1", InvoiceID: "inv-1", VersionNumber: 1, Status: entities.VersionActive},
		}, nil)

		storeErr := errors.New("conditional write failed")
		versionRepo.EXPECT().UpdateStatus(gomock.Any(), "ver-1", entities.VersionSuperseded).
			Return(entities.EstimateVersion{}, storeErr)

		_, err := uc.CreateVersion(context.Background(), "inv-1", "")
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestVersionUseCase_Compare(t *testing.T) {
	t.Run("diff between two snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, nil, nil)

		from := entities.EstimateVersion{ID: "ver-1", InvoiceID: "inv-1", TotalAmount: 10000, Items: []entities.LineItem{
			{ID: "item-1", Title: "Catering", Quantity: 1, UnitPrice: 10000, TotalPrice: 10000},
		}}
		to := entities.EstimateVersion{ID: "ver-2", InvoiceID: "inv-1", TotalAmount: 15000, Items: []entities.LineItem{
			{ID: "item-1", Title: "Catering", Quantity: 1, UnitPrice: 15000, TotalPrice: 15000},
		}}
		versionRepo.EXPECT().GetByID(gomock.Any(), "ver-1").Return(from, nil)
		versionRepo.EXPECT().GetByID(gomock.Any(), "ver-2").Return(to, nil)

		diff, err := uc.Compare(context.Background(), "inv-1", "ver-1", "ver-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff.PriceChange != 5000 {
			t.Fatalf("expected price change 5000, got %d", diff.PriceChange)
		}
		if len(diff.Modified) != 1 {
			t.Fatalf("expected 1 modified item, got %d", len(diff.Modified))
		}
	})

	t.Run("version from another invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, nil, nil)

		versionRepo.EXPECT().GetByID(gomock.Any(), "ver-9").
			Return(entities.EstimateVersion{ID: "ver-9", InvoiceID: "inv-other"}, nil)

		_, err := uc.Compare(context.Background(), "inv-1", "ver-9", "ver-2")
		if !errors.Is(err, ErrVersionWrongInvoice) {
			t.Fatalf("expected ErrVersionWrongInvoice, got %v", err)
		}
	})

	t.Run("missing version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, nil, nil)

		versionRepo.EXPECT().GetByID(gomock.Any(), "ver-x").Return(entities.EstimateVersion{}, nil)

		_, err := uc.Compare(context.Background(), "inv-1", "ver-x", "ver-2")
		if !errors.Is(err, ErrVersionNotFound) {
			t.Fatalf("expected ErrVersionNotFound, got %v", err)
		}
	})
}

func TestVersionUseCase_Archive(t *testing.T) {
	t.Run("archives an owned snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		versionRepo := mock_interfaces.NewMockIVersionRepository(ctrl)
		uc := NewVersionUseCase(versionRepo, nil, nil)

		versionRepo.EXPECT().GetByID(gomock.Any(), "ver-1").
			Return(entities.EstimateVersion{ID: "ver-1", InvoiceID: "inv-1", Status: entities.VersionActive}, nil)
		versionRepo.EXPECT().UpdateStatus(gomock.Any(), "ver-1", entities.VersionArchived).
			Return(entities.EstimateVersion{ID: "ver-1", InvoiceID: "inv-1", Status: entities.VersionArchived}, nil)

		updated, err := uc.Archive(context.Background(), "inv-1", "ver-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.VersionArchived {
			t.Fatalf("expected archived, got %s", updated.Status)
		}
	})

	t.Run("blank version id", func(t *testing.T) {
		uc := NewVersionUseCase(nil, nil, nil)
		_, err := uc.Archive(context.Background(), "inv-1", "   ")
		if !errors.Is(err, ErrInvalidVersionID) {
			t.Fatalf("expected ErrInvalidVersionID, got %v", err)
		}
	})
}
