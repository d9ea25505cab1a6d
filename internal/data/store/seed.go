package store

import (
	"context"
	"time"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

// demoPassword is the documented password for both demo accounts; they exist
// so the dashboards can be exercised without registering first.
const demoPassword = "password123"

// SeedDemoUsers inserts the two demo accounts, skipping any email that is
// already present.
func SeedDemoUsers(ctx context.Context, users UserStore, log *zap.Logger) error {
	demoPasswordHash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	now := time.Now()

	demos := []entity.User{
		{
			ID:           "demo_manufacturer_001",
			Name:         "John Manufacturing",
			Email:        "manufacturer@demo.com",
			PasswordHash: demoPasswordHash,
			UserType:     entity.UserTypeManufacturer,
			CompanyName:  "Demo Manufacturing Co",
			Phone:        "+27 11 123 4567",
			CreatedAt:    now,
		},
		{
			ID:           "demo_supplier_001",
			Name:         "Jane Supply",
			Email:        "supplier@demo.com",
			PasswordHash: demoPasswordHash,
			UserType:     entity.UserTypeSupplier,
			CompanyName:  "Demo Supply Chain Ltd",
			Phone:        "+27 21 987 6543",
			CreatedAt:    now,
		},
	}

	for i := range demos {
		existing, err := users.FindByEmail(ctx, demos[i].Email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if err := users.Create(ctx, &demos[i]); err != nil {
			return err
		}

		log.Info("Demo user seeded",
			zap.String("email", demos[i].Email),
			zap.String("user_type", string(demos[i].UserType)),
		)
	}

	return nil
}
