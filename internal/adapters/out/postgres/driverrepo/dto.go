// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"logitech/internal/core/domain/model/driver"
	"logitech/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The service area is indexed for availability lookups.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	ServiceArea  string `gorm:"index"`
	Capacity     int
	ActiveOrders int
	RegisteredAt time.Time `gorm:"autoCreateTime:false"`
	Version      int
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		ServiceArea:  aggregate.ServiceArea().Name(),
		Capacity:     aggregate.Capacity(),
		ActiveOrders: aggregate.ActiveOrders(),
		RegisteredAt: aggregate.RegisteredAt(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a driver aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceArea, err := kernel.NewServiceArea(dto.ServiceArea)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		serviceArea,
		dto.Capacity,
		dto.ActiveOrders,
		dto.RegisteredAt,
		dto.Version,
	)
}
