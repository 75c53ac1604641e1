package purchaserequest_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	apppurchaserequest "github.com/muhammadheryan/inventory-hub/application/purchaserequest"
	"github.com/muhammadheryan/inventory-hub/constant"
	productmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/product"
	prmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/purchaserequest"
	txmocks "github.com/muhammadheryan/inventory-hub/mocks/repository/tx"
	foomhubmocks "github.com/muhammadheryan/inventory-hub/mocks/thirdparty/foomhub"
	"github.com/muhammadheryan/inventory-hub/model"
	"github.com/muhammadheryan/inventory-hub/thirdparty/foomhub"
	cerr "github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestPurchaseRequestApp_CreatePurchaseRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		prRepo      *prmocks.PurchaseRequestRepository
		productRepo *productmocks.ProductRepository
		foomHub     *foomhubmocks.Client
	}
	type args struct {
		ctx context.Context
		req *model.CreatePurchaseRequestRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.PurchaseRequestDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create request with items",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreatePurchaseRequestRequest{
					Reference:   "PR-100",
					WarehouseID: 1,
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertPurchaseRequestTxItem) bool {
					return req.Reference == "PR-100" && req.WarehouseID == 1 && req.Status == constant.PurchaseRequestStatusDraft
				})).Return(uint64(1), nil).Once()

				f.prRepo.On("InsertItemsTx", mock.Anything, tx, uint64(1), []model.PurchaseRequestItemRequest{
					{ProductID: 1, Quantity: 5},
				}).Return(nil).Once()

				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return([]model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
				}, nil).Once()
			},
			want: &model.PurchaseRequestDetail{
				PurchaseRequest: model.PurchaseRequest{
					ID:          1,
					Reference:   "PR-100",
					WarehouseID: 1,
					Status:      constant.PurchaseRequestStatusDraft,
				},
				Items: []model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
				},
			},
			wantErr: false,
		},
		{
			name: "error: duplicate reference",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreatePurchaseRequestRequest{
					Reference:   "PR-100",
					WarehouseID: 1,
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreatePurchaseRequestRequest{
					Reference:   "PR-100",
					WarehouseID: 1,
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: InsertItemsTx fails and rolls back",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreatePurchaseRequestRequest{
					Reference:   "PR-100",
					WarehouseID: 1,
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(1), nil).Once()
				f.prRepo.On("InsertItemsTx", mock.Anything, tx, uint64(1), mock.Anything).Return(errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchaserequest.NewPurchaseRequestApp(tt.fields.txRepo, tt.fields.prRepo, tt.fields.productRepo, tt.fields.foomHub)

			got, err := app.CreatePurchaseRequest(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreatePurchaseRequest() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID != tt.want.ID || got.Reference != tt.want.Reference || got.Status != tt.want.Status {
				t.Fatalf("CreatePurchaseRequest() = %+v, want %+v", got.PurchaseRequest, tt.want.PurchaseRequest)
			}
			if len(got.Items) != len(tt.want.Items) {
				t.Fatalf("CreatePurchaseRequest() items = %d, want %d", len(got.Items), len(tt.want.Items))
			}
		})
	}
}

func TestPurchaseRequestApp_UpdatePurchaseRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		prRepo      *prmocks.PurchaseRequestRepository
		productRepo *productmocks.ProductRepository
		foomHub     *foomhubmocks.Client
	}
	type args struct {
		ctx context.Context
		id  uint64
		req *model.UpdatePurchaseRequestRequest
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantState constant.PurchaseRequestStatus
		wantSync  bool
		wantErr   bool
		errCode   constant.ErrorType
		errDetail string
	}{
		{
			name: "success: transition to PENDING syncs with FOOM Hub",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.UpdatePurchaseRequestRequest{
					Status: strPtr("PENDING"),
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
						{ProductID: 2, Quantity: 3},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()

				// first read feeds the item diff, second read builds the response
				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return([]model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 2},
				}, nil).Once()
				f.prRepo.On("UpdateItemQuantityTx", mock.Anything, tx, uint64(10), 5).Return(nil).Once()
				f.prRepo.On("InsertItemsTx", mock.Anything, tx, uint64(1), []model.PurchaseRequestItemRequest{
					{ProductID: 2, Quantity: 3},
				}).Return(nil).Once()

				f.prRepo.On("UpdateTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(req *model.UpdatePurchaseRequestTxItem) bool {
					return req.Reference == "PR-100" && req.Status == constant.PurchaseRequestStatusPending
				})).Return(nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(&model.Product{ID: 1, Name: "Widget", SKU: "W-001"}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(2)).Return(&model.Product{ID: 2, Name: "Gadget", SKU: "G-002"}, nil).Once()

				f.foomHub.On("SubmitPurchaseRequest", mock.Anything, mock.MatchedBy(func(req *model.FoomSyncRequest) bool {
					return req.Vendor == constant.VendorName &&
						req.Reference == "PR-100" &&
						req.QtyTotal == 8 &&
						len(req.Details) == 2 &&
						req.Details[0].ProductName == "Widget" &&
						req.Details[0].SKUBarcode == "W-001"
				})).Return(json.RawMessage(`{"success":true}`), nil).Once()

				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return([]model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
					{ID: 11, PurchaseRequestID: 1, ProductID: 2, Quantity: 3},
				}, nil).Once()
			},
			wantState: constant.PurchaseRequestStatusPending,
			wantSync:  true,
			wantErr:   false,
		},
		{
			name: "success: reordered payload updates quantities in place",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.UpdatePurchaseRequestRequest{
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 2, Quantity: 3},
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()

				existing := []model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
					{ID: 11, PurchaseRequestID: 1, ProductID: 2, Quantity: 3},
				}
				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return(existing, nil).Twice()

				// same product set: no deletes, no inserts, rows keep their ids
				f.prRepo.On("UpdateItemQuantityTx", mock.Anything, tx, uint64(11), 3).Return(nil).Once()
				f.prRepo.On("UpdateItemQuantityTx", mock.Anything, tx, uint64(10), 5).Return(nil).Once()

				f.prRepo.On("UpdateTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(req *model.UpdatePurchaseRequestTxItem) bool {
					return req.Status == constant.PurchaseRequestStatusDraft
				})).Return(nil).Once()
			},
			wantState: constant.PurchaseRequestStatusDraft,
			wantErr:   false,
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  999,
				req: &model.UpdatePurchaseRequestRequest{Reference: strPtr("PR-200")},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: request already left DRAFT",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.UpdatePurchaseRequestRequest{Reference: strPtr("PR-200")},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: PENDING transition with no items",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.UpdatePurchaseRequestRequest{Status: strPtr("PENDING")},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()
				f.prRepo.On("UpdateTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()
				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return([]model.PurchaseRequestItem{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmptyItems,
		},
		{
			name: "error: FOOM Hub rejects the sync and everything rolls back",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				id:  1,
				req: &model.UpdatePurchaseRequestRequest{
					Status: strPtr("PENDING"),
					Products: []model.PurchaseRequestItemRequest{
						{ProductID: 1, Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()
				f.prRepo.On("GetItemsByRequestIDTx", mock.Anything, tx, uint64(1)).Return([]model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
				}, nil).Once()
				f.prRepo.On("UpdateItemQuantityTx", mock.Anything, tx, uint64(10), 5).Return(nil).Once()
				f.prRepo.On("UpdateTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(&model.Product{ID: 1, Name: "Widget", SKU: "W-001"}, nil).Once()

				f.foomHub.On("SubmitPurchaseRequest", mock.Anything, mock.Anything).Return(nil, &foomhub.SyncError{
					StatusCode: 422,
					Body:       `{"message":"duplicate reference"}`,
				}).Once()
			},
			wantErr:   true,
			errCode:   constant.ErrUpstreamSync,
			errDetail: `{"message":"duplicate reference"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchaserequest.NewPurchaseRequestApp(tt.fields.txRepo, tt.fields.prRepo, tt.fields.productRepo, tt.fields.foomHub)

			got, err := app.UpdatePurchaseRequest(tt.args.ctx, tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdatePurchaseRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errDetail != "" && ce.ErrorDetail() != tt.errDetail {
					t.Fatalf("error detail = %s, want %s", ce.ErrorDetail(), tt.errDetail)
				}
				return
			}

			if got.PurchaseRequest.Status != tt.wantState {
				t.Fatalf("UpdatePurchaseRequest() status = %s, want %s", got.PurchaseRequest.Status, tt.wantState)
			}
			if tt.wantSync && got.FoomHubResponse == nil {
				t.Fatal("UpdatePurchaseRequest() FoomHubResponse should not be nil after sync")
			}
			if !tt.wantSync && got.FoomHubResponse != nil {
				t.Fatal("UpdatePurchaseRequest() FoomHubResponse should be nil without sync")
			}
		})
	}
}

func TestPurchaseRequestApp_DeletePurchaseRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		prRepo      *prmocks.PurchaseRequestRepository
		productRepo *productmocks.ProductRepository
		foomHub     *foomhubmocks.Client
	}
	type args struct {
		ctx context.Context
		id  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delete DRAFT request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{ctx: context.Background(), id: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()
				f.prRepo.On("DeleteTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{ctx: context.Background(), id: 999},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: request already left DRAFT",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			args: args{ctx: context.Background(), id: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.prRepo.On("GetByIDForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchaserequest.NewPurchaseRequestApp(tt.fields.txRepo, tt.fields.prRepo, tt.fields.productRepo, tt.fields.foomHub)

			err := app.DeletePurchaseRequest(tt.args.ctx, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeletePurchaseRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestPurchaseRequestApp_GetPurchaseRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		prRepo      *prmocks.PurchaseRequestRepository
		productRepo *productmocks.ProductRepository
		foomHub     *foomhubmocks.Client
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		want     *model.PurchaseRequestDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: request with items",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.prRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.PurchaseRequest{
					ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft,
				}, nil).Once()
				f.prRepo.On("GetItemsByRequestID", mock.Anything, uint64(1)).Return([]model.PurchaseRequestItem{
					{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5},
				}, nil).Once()
			},
			want: &model.PurchaseRequestDetail{
				PurchaseRequest: model.PurchaseRequest{ID: 1, Reference: "PR-100", WarehouseID: 1, Status: constant.PurchaseRequestStatusDraft},
				Items:           []model.PurchaseRequestItem{{ID: 10, PurchaseRequestID: 1, ProductID: 1, Quantity: 5}},
			},
			wantErr: false,
		},
		{
			name: "error: not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				prRepo:      prmocks.NewPurchaseRequestRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				foomHub:     foomhubmocks.NewClient(t),
			},
			id: 999,
			mockCall: func(f fields) {
				f.prRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppurchaserequest.NewPurchaseRequestApp(tt.fields.txRepo, tt.fields.prRepo, tt.fields.productRepo, tt.fields.foomHub)

			got, err := app.GetPurchaseRequest(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPurchaseRequest() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID != tt.want.ID || got.Reference != tt.want.Reference {
				t.Fatalf("GetPurchaseRequest() = %+v, want %+v", got.PurchaseRequest, tt.want.PurchaseRequest)
			}
			if len(got.Items) != len(tt.want.Items) {
				t.Fatalf("GetPurchaseRequest() items = %d, want %d", len(got.Items), len(tt.want.Items))
			}
		})
	}
}
