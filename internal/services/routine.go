package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skinsync/skinsync/internal/insights"
	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/repositories/products"
	"github.com/skinsync/skinsync/internal/repositories/routinelogs"
	"github.com/skinsync/skinsync/internal/storage"
)

// NewProduct carries the fields for adding a routine product. Morning and
// Night are independently settable; a product may belong to both routines.
type NewProduct struct {
	Name    string
	Brand   string
	Type    models.ProductType
	Morning bool
	Night   bool
}

// RoutineService manages a user's products and daily completion log.
type RoutineService interface {
	// Products returns the user's full product collection.
	Products(ctx context.Context, userID string) ([]models.Product, error)

	// ProductsForSlot returns the products tagged for one slot.
	ProductsForSlot(ctx context.Context, userID string, slot models.Slot) ([]models.Product, error)

	// AddProduct creates a product with a fresh id and returns it.
	AddProduct(ctx context.Context, userID string, np NewProduct) (*models.Product, error)

	// DeleteProduct removes a product. Absent ids are a no-op.
	DeleteProduct(ctx context.Context, userID string, productID string) error

	// ToggleProduct flips the product's membership in today's completed set
	// and recomputes the slot's completion flag against the current product
	// set. Today's log is created lazily on the first toggle.
	ToggleProduct(ctx context.Context, userID string, productID string, slot models.Slot) (*models.RoutineLog, error)

	// TodayLog returns today's log, or nil when nothing has been toggled
	// yet today.
	TodayLog(ctx context.Context, userID string) (*models.RoutineLog, error)

	// TodayStatus reports today's completion per slot, recomputed from the
	// completed set rather than the cached log flags.
	TodayStatus(ctx context.Context, userID string) (insights.RoutineStatus, error)

	// HealthScore computes the user's current 0-100 score.
	HealthScore(ctx context.Context, userID string) (int, error)
}

type routineService struct {
	store *storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewRoutineService(store *storage.Store, log logging.Logger) RoutineService {
	return &routineService{store: store, log: log, now: time.Now}
}

func (s *routineService) getProductRepo(kv storage.KV) products.Repository {
	return products.NewKVRepository(kv)
}

func (s *routineService) getLogRepo(kv storage.KV) routinelogs.Repository {
	return routinelogs.NewKVRepository(kv)
}

func (s *routineService) today() string {
	return s.now().UTC().Format(models.DateLayout)
}

func (s *routineService) Products(ctx context.Context, userID string) ([]models.Product, error) {
	return s.getProductRepo(s.store).List(ctx, userID)
}

func (s *routineService) ProductsForSlot(ctx context.Context, userID string, slot models.Slot) ([]models.Product, error) {
	all, err := s.Products(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insights.FilterBySlot(all, slot), nil
}

func (s *routineService) AddProduct(ctx context.Context, userID string, np NewProduct) (*models.Product, error) {
	product := &models.Product{
		ID:        uuid.NewString(),
		Name:      np.Name,
		Brand:     np.Brand,
		Type:      np.Type,
		IsMorning: np.Morning,
		IsNight:   np.Night,
	}

	if err := s.getProductRepo(s.store).Save(ctx, userID, product); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "product added", "user_id", userID, "product_id", product.ID)
	return product, nil
}

func (s *routineService) DeleteProduct(ctx context.Context, userID string, productID string) error {
	if err := s.getProductRepo(s.store).Delete(ctx, userID, productID); err != nil {
		return err
	}
	s.log.Info(ctx, "product deleted", "user_id", userID, "product_id", productID)
	return nil
}

func (s *routineService) ToggleProduct(ctx context.Context, userID string, productID string, slot models.Slot) (*models.RoutineLog, error) {
	date := s.today()
	var result *models.RoutineLog

	err := s.store.InTx(ctx, func(ctx context.Context, kv *storage.Store) error {
		all, err := s.getProductRepo(kv).List(ctx, userID)
		if err != nil {
			return err
		}

		logRepo := s.getLogRepo(kv)
		entry, err := logRepo.GetByDate(ctx, userID, date)
		if err != nil {
			return err
		}
		if entry == nil {
			entry = &models.RoutineLog{Date: date, CompletedProducts: []string{}}
		}

		if entry.Completed(productID) {
			kept := make([]string, 0, len(entry.CompletedProducts))
			for _, id := range entry.CompletedProducts {
				if id != productID {
					kept = append(kept, id)
				}
			}
			entry.CompletedProducts = kept
		} else {
			entry.CompletedProducts = append(entry.CompletedProducts, productID)
		}

		done := insights.SlotComplete(all, entry.CompletedProducts, slot)
		if slot == models.SlotMorning {
			entry.MorningCompleted = done
		} else {
			entry.NightCompleted = done
		}

		if err := logRepo.Save(ctx, userID, entry); err != nil {
			return err
		}
		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *routineService) TodayLog(ctx context.Context, userID string) (*models.RoutineLog, error) {
	return s.getLogRepo(s.store).GetByDate(ctx, userID, s.today())
}

func (s *routineService) TodayStatus(ctx context.Context, userID string) (insights.RoutineStatus, error) {
	all, err := s.getProductRepo(s.store).List(ctx, userID)
	if err != nil {
		return insights.RoutineStatus{}, err
	}
	logs, err := s.getLogRepo(s.store).List(ctx, userID)
	if err != nil {
		return insights.RoutineStatus{}, err
	}
	return insights.TodayStatus(logs, all, s.today()), nil
}

func (s *routineService) HealthScore(ctx context.Context, userID string) (int, error) {
	all, err := s.getProductRepo(s.store).List(ctx, userID)
	if err != nil {
		return 0, err
	}
	logs, err := s.getLogRepo(s.store).List(ctx, userID)
	if err != nil {
		return 0, err
	}
	return insights.HealthScore(logs, all), nil
}
