package menu

import (
	"context"
	"sort"

	"github.com/saigonkitchen/orderfront/lib/myerrors"
	"github.com/saigonkitchen/orderfront/lib/mylog"
	"github.com/saigonkitchen/orderfront/lib/mystore"
)

type service struct {
	foodStore mystore.Store[Food]
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(foodStore mystore.Store[Food], logger mylog.Logger) *service {
	return &service{
		foodStore: foodStore,
		logger:    logger,
	}
}

// seedWhenEmpty fills the catalog on first start so the storefront has
// something to sell out of the box.
func (s *service) seedWhenEmpty(c context.Context) error {
	return s.foodStore.RunInTransaction(c, func(c context.Context) error {
		existing, err := s.foodStore.List(c)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if len(existing) > 0 {
			return nil
		}

		for _, food := range seedFoods {
			err = s.foodStore.Put(c, food.UID, food)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Seeded catalog with %d dishes", len(seedFoods))

		return nil
	})
}

func (s *service) listFoods(c context.Context) ([]Food, error) {
	foods, err := s.foodStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(foods, func(i, j int) bool {
		if foods[i].Category != foods[j].Category {
			return foods[i].Category < foods[j].Category
		}
		return foods[i].Name < foods[j].Name
	})

	return foods, nil
}
