package commands_test

import (
	"testing"

	"logitech/internal/core/application/usecases/commands"
	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.Actor{})
	require.Error(t, err)
}

func TestCancelOrderCommandHandler_Handle_BuyerCancelsPending(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	buyer, err := kernel.NewBuyerActor(aggregate.BuyerID())
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), buyer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_InTransitRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newInTransitOrder(t, kernel.NewUUID())
	buyer, err := kernel.NewBuyerActor(aggregate.BuyerID())
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), buyer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.InTransit, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ForeignBuyerRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	stranger, err := kernel.NewBuyerActor(kernel.NewUUID())
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), stranger)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil, testLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrUnauthorizedActor)
	assert.Equal(t, order.Pending, aggregate.Status())
}
