package kernel_test

import (
	"testing"

	"logitech/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserActors(t *testing.T) {
	userID := kernel.NewUUID()

	testCases := []struct {
		name        string
		construct   func(kernel.UUID) (kernel.Actor, error)
		role        kernel.Role
	}{
		{"buyer", kernel.NewBuyerActor, kernel.RoleBuyer},
		{"driver", kernel.NewDriverActor, kernel.RoleDriver},
		{"admin", kernel.NewAdminActor, kernel.RoleAdmin},
	}

	for _, tc := range testCases {
		t.Run("should create "+tc.name+" actor", func(t *testing.T) {
			actor, err := tc.construct(userID)

			require.NoError(t, err)
			require.NoError(t, actor.Validate())
			assert.Equal(t, tc.role, actor.Role())
			assert.True(t, actor.ID().IsEqual(userID))
			assert.False(t, actor.IsSystem())
			assert.Equal(t, string(tc.role)+":"+userID.String(), actor.String())
		})

		t.Run("should reject "+tc.name+" actor with invalid id", func(t *testing.T) {
			var invalidID kernel.UUID

			_, err := tc.construct(invalidID)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "UUID must be created")
		})
	}
}

func TestSystemActors(t *testing.T) {
	t.Run("payment system actor", func(t *testing.T) {
		actor := kernel.PaymentSystemActor()

		require.NoError(t, actor.Validate())
		assert.Equal(t, kernel.RolePaymentSystem, actor.Role())
		assert.True(t, actor.IsSystem())
		assert.Equal(t, "payment-system", actor.String())
	})

	t.Run("assignment service actor", func(t *testing.T) {
		actor := kernel.AssignmentServiceActor()

		require.NoError(t, actor.Validate())
		assert.Equal(t, kernel.RoleAssignmentService, actor.Role())
		assert.True(t, actor.IsSystem())
		assert.Equal(t, "assignment-service", actor.String())
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrActorIsNotConstructed, err)
	})
}
