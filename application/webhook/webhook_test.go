package webhook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appwebhook "github.com/muhammadheryan/inventory-hub/application/webhook"
	"github.com/muhammadheryan/inventory-hub/constant"
	productmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/product"
	prmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/purchaserequest"
	stockmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-hub/model"
	cerr "github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int { return &i }

// Note: webhook.go checks if publisher is nil before publishing, so tests
// run with a nil publisher.

func TestWebhookApp_ReceiveStock(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		prRepo      *prmocks.PurchaseRequestRepository
		productRepo *productmocks.ProductRepository
		stockRepo   *stockmocks.StockRepository
	}
	type args struct {
		ctx context.Context
		req *model.WebhookStockRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.WebhookStockResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: all items land and request completes",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					QtyTotal:  8,
					Details: []model.WebhookStockDetail{
						{ProductName: "Widget", SKUBarcode: "W-001", Qty: intPtr(5)},
						{ProductName: "Gadget", SKUBarcode: "G-002", Qty: intPtr(3)},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusPending,
				}, nil).Once()

				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "W-001").Return(&model.Product{ID: 1, Name: "Widget", SKU: "W-001"}, nil).Once()
				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "G-002").Return(&model.Product{ID: 2, Name: "Gadget", SKU: "G-002"}, nil).Once()

				f.stockRepo.On("AddStockTx", mock.Anything, tx, uint64(2), uint64(1), 5).Return(int64(15), nil).Once()
				f.stockRepo.On("AddStockTx", mock.Anything, tx, uint64(2), uint64(2), 3).Return(int64(3), nil).Once()

				f.prRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.PurchaseRequestStatusCompleted).Return(nil).Once()
			},
			want: &model.WebhookStockResult{
				PurchaseRequestID: 1,
				Reference:         "PR-100",
				WarehouseID:       2,
				QtyTotal:          8,
				ItemsProcessed:    2,
				ItemsFailed:       0,
			},
			wantErr: false,
		},
		{
			name: "success: unknown product is skipped, the rest lands",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					QtyTotal:  8,
					Details: []model.WebhookStockDetail{
						{ProductName: "Widget", SKUBarcode: "W-001", Qty: intPtr(5)},
						{ProductName: "Mystery", SKUBarcode: "M-404", Qty: intPtr(3)},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusPending,
				}, nil).Once()

				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "W-001").Return(&model.Product{ID: 1, Name: "Widget", SKU: "W-001"}, nil).Once()
				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "M-404").Return(nil, nil).Once()

				f.stockRepo.On("AddStockTx", mock.Anything, tx, uint64(2), uint64(1), 5).Return(int64(15), nil).Once()

				f.prRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.PurchaseRequestStatusCompleted).Return(nil).Once()
			},
			want: &model.WebhookStockResult{
				PurchaseRequestID: 1,
				Reference:         "PR-100",
				WarehouseID:       2,
				QtyTotal:          8,
				ItemsProcessed:    1,
				ItemsFailed:       1,
			},
			wantErr: false,
		},
		{
			name: "success: replay on COMPLETED request is a no-op",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					QtyTotal:  5,
					Details: []model.WebhookStockDetail{
						{ProductName: "Widget", SKUBarcode: "W-001", Qty: intPtr(5)},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusCompleted,
				}, nil).Once()
			},
			want: &model.WebhookStockResult{
				PurchaseRequestID: 1,
				Reference:         "PR-100",
				WarehouseID:       2,
				AlreadyProcessed:  true,
			},
			wantErr: false,
		},
		{
			name: "error: unknown vendor",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    "SOME OTHER VENDOR",
					Reference: "PR-100",
					Details:   []model.WebhookStockDetail{},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidVendor,
		},
		{
			name: "error: unknown reference",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-404",
					Details:   []model.WebhookStockDetail{},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-404").Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: request still in DRAFT",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					Details:   []model.WebhookStockDetail{},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: every item fails and nothing is committed",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					QtyTotal:  8,
					Details: []model.WebhookStockDetail{
						{ProductName: "Widget", SKUBarcode: "", Qty: intPtr(5)},
						{ProductName: "Gadget", SKUBarcode: "G-002", Qty: nil},
						{ProductName: "Mystery", SKUBarcode: "M-404", Qty: intPtr(3)},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusPending,
				}, nil).Once()

				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "M-404").Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrWebhookNoItems,
		},
		{
			name: "error: stock increment failure stays item-scoped",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.WebhookStockRequest{
					Vendor:    constant.VendorName,
					Reference: "PR-100",
					QtyTotal:  8,
					Details: []model.WebhookStockDetail{
						{ProductName: "Widget", SKUBarcode: "W-001", Qty: intPtr(5)},
						{ProductName: "Gadget", SKUBarcode: "G-002", Qty: intPtr(3)},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByReferenceForUpdateTx", mock.Anything, tx, "PR-100").Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 2, Status: constant.PurchaseRequestStatusPending,
				}, nil).Once()

				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "W-001").Return(&model.Product{ID: 1, Name: "Widget", SKU: "W-001"}, nil).Once()
				f.productRepo.On("GetBySKUTx", mock.Anything, tx, "G-002").Return(&model.Product{ID: 2, Name: "Gadget", SKU: "G-002"}, nil).Once()

				f.stockRepo.On("AddStockTx", mock.Anything, tx, uint64(2), uint64(1), 5).Return(int64(15), nil).Once()
				f.stockRepo.On("AddStockTx", mock.Anything, tx, uint64(2), uint64(2), 3).Return(int64(0), errors.New("db error")).Once()

				f.prRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(1), constant.PurchaseRequestStatusCompleted).Return(nil).Once()
			},
			want: &model.WebhookStockResult{
				PurchaseRequestID: 1,
				Reference:         "PR-100",
				WarehouseID:       2,
				QtyTotal:          8,
				ItemsProcessed:    1,
				ItemsFailed:       1,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appwebhook.NewWebhookApp(tt.fields.txRepo, tt.fields.prRepo, tt.fields.productRepo, tt.fields.stockRepo, nil)

			got, err := app.ReceiveStock(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReceiveStock() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.PurchaseRequestID != tt.want.PurchaseRequestID || got.Reference != tt.want.Reference {
				t.Fatalf("ReceiveStock() request = %d/%s, want %d/%s", got.PurchaseRequestID, got.Reference, tt.want.PurchaseRequestID, tt.want.Reference)
			}
			if got.AlreadyProcessed != tt.want.AlreadyProcessed {
				t.Fatalf("ReceiveStock() alreadyProcessed = %v, want %v", got.AlreadyProcessed, tt.want.AlreadyProcessed)
			}
			if got.ItemsProcessed != tt.want.ItemsProcessed || got.ItemsFailed != tt.want.ItemsFailed {
				t.Fatalf("ReceiveStock() processed/failed = %d/%d, want %d/%d", got.ItemsProcessed, got.ItemsFailed, tt.want.ItemsProcessed, tt.want.ItemsFailed)
			}
			if len(got.StockUpdates) != tt.want.ItemsProcessed {
				t.Fatalf("ReceiveStock() stock updates = %d, want %d", len(got.StockUpdates), tt.want.ItemsProcessed)
			}
		})
	}
}
