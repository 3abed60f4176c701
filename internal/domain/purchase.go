package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/crypto"
	"github.com/studyhive-lab/backend/pkg/enum"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PurchaseDomain interface {
	BuyNote(context.Context, *model.BuyNoteRequest) (*model.BuyNoteResponse, error)
	BuyTest(context.Context, *model.BuyTestRequest) (*model.BuyTestResponse, error)
	BuyCategory(context.Context, *model.BuyCategoryRequest) (*model.BuyCategoryResponse, error)
	GetMine(context.Context, *model.GetMyPurchasesRequest) (*model.GetMyPurchasesResponse, error)
}

type purchaseDomain struct {
	purchaseRepo         repository.PurchaseRepository
	categoryPurchaseRepo repository.CategoryPurchaseRepository
	noteRepo             repository.NoteRepository
	testRepo             repository.TestRepository
	loader               *entitlement.Loader
	refetch              *refetcher
}

func NewPurchaseDomain(
	purchaseRepo repository.PurchaseRepository,
	categoryPurchaseRepo repository.CategoryPurchaseRepository,
	noteRepo repository.NoteRepository,
	testRepo repository.TestRepository,
	loader *entitlement.Loader,
	publisher pubsub.Publisher,
) *purchaseDomain {
	return &purchaseDomain{
		purchaseRepo:         purchaseRepo,
		categoryPurchaseRepo: categoryPurchaseRepo,
		noteRepo:             noteRepo,
		testRepo:             testRepo,
		loader:               loader,
		refetch:              newRefetcher(publisher),
	}
}

// generateOrderID builds ids like NOTE_1693526400000_X7K2M9QD.
func generateOrderID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), crypto.GenerateRandomAlphabet(8))
}

func generatePaymentID() string {
	return fmt.Sprintf("PAY_%s", crypto.GenerateRandomAlphabet(16))
}

func (d *purchaseDomain) BuyNote(
	ctx context.Context, req *model.BuyNoteRequest,
) (*model.BuyNoteResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	note, err := d.noteRepo.GetByID(ctx, req.NoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found note")
		}

		xcontext.Logger(ctx).Errorf("Cannot get note: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entitlement.HasAccess(entitlement.NoteItem(note), snapshot) {
		return nil, errorx.New(errorx.AlreadyExists, "You already have access to this note")
	}

	purchase := &entity.Purchase{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    userID,
		NoteID:    sql.NullString{Valid: true, String: note.ID},
		OrderID:   generateOrderID("NOTE"),
		PaymentID: generatePaymentID(),
		Amount:    note.Price,
		Status:    entity.PurchaseCompleted,
	}

	if err := d.purchaseRepo.Create(ctx, purchase); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create purchase: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.PurchasesBucket, userID)

	return &model.BuyNoteResponse{Purchase: model.ConvertPurchase(purchase)}, nil
}

func (d *purchaseDomain) BuyTest(
	ctx context.Context, req *model.BuyTestRequest,
) (*model.BuyTestResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	test, err := d.testRepo.GetByID(ctx, req.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found test")
		}

		xcontext.Logger(ctx).Errorf("Cannot get test: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entitlement.HasAccess(entitlement.TestItem(test), snapshot) {
		return nil, errorx.New(errorx.AlreadyExists, "You already have access to this test")
	}

	purchase := &entity.Purchase{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    userID,
		TestID:    sql.NullString{Valid: true, String: test.ID},
		OrderID:   generateOrderID("TEST"),
		PaymentID: generatePaymentID(),
		Amount:    test.Price,
		Status:    entity.PurchaseCompleted,
	}

	if err := d.purchaseRepo.Create(ctx, purchase); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create purchase: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.PurchasesBucket, userID)

	return &model.BuyTestResponse{Purchase: model.ConvertPurchase(purchase)}, nil
}

func (d *purchaseDomain) BuyCategory(
	ctx context.Context, req *model.BuyCategoryRequest,
) (*model.BuyCategoryResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	snapshot, err := d.loader.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if entitlement.HasCategoryAccess(req.Category, contentType, snapshot) {
		return nil, errorx.New(errorx.AlreadyExists, "You already have access to this category")
	}

	amount, err := d.categoryAmount(ctx, req.Category, contentType)
	if err != nil {
		return nil, err
	}

	purchase := &entity.CategoryPurchase{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Category:    req.Category,
		ContentType: contentType,
		OrderID:     generateOrderID(fmt.Sprintf("CAT_%s", strings.ToUpper(string(contentType)))),
		PaymentID:   generatePaymentID(),
		Amount:      amount,
		Status:      entity.PurchaseCompleted,
	}

	if err := d.categoryPurchaseRepo.Create(ctx, purchase); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create category purchase: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.PurchasesBucket, userID)

	return &model.BuyCategoryResponse{Purchase: model.ConvertCategoryPurchase(purchase)}, nil
}

// categoryAmount sums the prices of every active item the bundle covers.
func (d *purchaseDomain) categoryAmount(
	ctx context.Context, category string, contentType entity.ContentType,
) (float64, error) {
	var amount float64

	if contentType == entity.NotesContent || contentType == entity.BothContent {
		notes, err := d.noteRepo.GetByCategory(ctx, category)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get notes of category: %v", err)
			return 0, errorx.Unknown
		}

		for _, n := range notes {
			amount += n.Price
		}
	}

	if contentType == entity.TestsContent || contentType == entity.BothContent {
		tests, err := d.testRepo.GetByCategory(ctx, category)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get tests of category: %v", err)
			return 0, errorx.Unknown
		}

		for _, t := range tests {
			amount += t.Price
		}
	}

	return amount, nil
}

func (d *purchaseDomain) GetMine(
	ctx context.Context, req *model.GetMyPurchasesRequest,
) (*model.GetMyPurchasesResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	purchases, err := d.purchaseRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get purchases: %v", err)
		return nil, errorx.Unknown
	}

	categoryPurchases, err := d.categoryPurchaseRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get category purchases: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyPurchasesResponse{
		Purchases:         []model.Purchase{},
		CategoryPurchases: []model.CategoryPurchase{},
	}

	for _, p := range purchases {
		resp.Purchases = append(resp.Purchases, model.ConvertPurchase(&p))
	}

	for _, p := range categoryPurchases {
		resp.CategoryPurchases = append(resp.CategoryPurchases, model.ConvertCategoryPurchase(&p))
	}

	return resp, nil
}
