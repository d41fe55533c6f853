package services_test

import (
	"testing"
	"time"

	"logitech/internal/core/domain/model/driver"
	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrderInArea(t *testing.T, areaName string) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(100000)
	require.NoError(t, err)
	area, err := kernel.NewServiceArea(areaName)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"TRX-100", price, area, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(order.Paid, kernel.PaymentSystemActor(), time.Now()))
	return o
}

func driverInArea(t *testing.T, areaName string, capacity, active int, registeredAt time.Time) *driver.Driver {
	t.Helper()
	area, err := kernel.NewServiceArea(areaName)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(kernel.NewUUID(), "driver-"+areaName, area, capacity, active, registeredAt, 1)
	require.NoError(t, err)
	return d
}

func TestDriverAssignment_Assign(t *testing.T) {
	now := time.Now()
	assignment := services.NewDriverAssignment()

	t.Run("selects least-loaded driver under capacity", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		d1 := driverInArea(t, "jakarta", 3, 0, now)
		d2 := driverInArea(t, "jakarta", 3, 3, now)

		selected, err := assignment.Assign(o, []*driver.Driver{d2, d1}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(d1))
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(d1.ID()))
		assert.Equal(t, 1, d1.ActiveOrders())
		assert.Equal(t, 3, d2.ActiveOrders())
	})

	t.Run("skips drivers outside the delivery area", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		bandung := driverInArea(t, "bandung", 3, 0, now)
		jakarta := driverInArea(t, "jakarta", 3, 2, now)

		selected, err := assignment.Assign(o, []*driver.Driver{bandung, jakarta}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(jakarta))
	})

	t.Run("ties break by earliest registration", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		earlier := driverInArea(t, "jakarta", 3, 1, now.Add(-time.Hour))
		later := driverInArea(t, "jakarta", 3, 1, now)

		selected, err := assignment.Assign(o, []*driver.Driver{later, earlier}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(earlier))
	})

	t.Run("remaining ties break by lowest id", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		d1 := driverInArea(t, "jakarta", 3, 1, now)
		d2 := driverInArea(t, "jakarta", 3, 1, now)

		want := d1
		if d2.ID().String() < d1.ID().String() {
			want = d2
		}

		selected, err := assignment.Assign(o, []*driver.Driver{d1, d2}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(want))
	})

	t.Run("no eligible driver returns ErrNoDriverAvailable and leaves order paid", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		full := driverInArea(t, "jakarta", 2, 2, now)
		elsewhere := driverInArea(t, "bandung", 3, 0, now)

		_, err := assignment.Assign(o, []*driver.Driver{full, elsewhere}, now)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
		assert.Equal(t, order.Paid, o.Status())
		assert.Nil(t, o.DriverID())
	})

	t.Run("empty candidate list returns ErrNoDriverAvailable", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")

		_, err := assignment.Assign(o, nil, now)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("rejects non-assignable order without touching drivers", func(t *testing.T) {
		price, err := kernel.NewMoney(100000)
		require.NoError(t, err)
		area, err := kernel.NewServiceArea("jakarta")
		require.NoError(t, err)
		pending, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"TRX-101", price, area, now)
		require.NoError(t, err)

		d := driverInArea(t, "jakarta", 3, 0, now)

		_, err = assignment.Assign(pending, []*driver.Driver{d}, now)

		require.ErrorIs(t, err, order.ErrOrderIsNotAssignable)
		assert.Equal(t, 0, d.ActiveOrders())
	})

	t.Run("spec scenario: D1 idle beats D2 at threshold", func(t *testing.T) {
		o := paidOrderInArea(t, "jakarta")
		d1 := driverInArea(t, "jakarta", 3, 0, now)
		d2 := driverInArea(t, "jakarta", 3, 3, now)

		selected, err := assignment.Assign(o, []*driver.Driver{d1, d2}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(d1))
		assert.Equal(t, order.InTransit, o.Status())
		assert.True(t, o.DriverID().IsEqual(d1.ID()))
	})
}
