package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

func TestNewResource_Projection(t *testing.T) {
	t.Parallel()

	order := models.Order{
		ID:     5,
		UserID: 2,
		User: &models.User{
			ID:       2,
			Name:     "Maria Fernanda",
			LastName: "Lopez Garcia",
			Email:    "maria@example.com",
		},
		Cyborg:    &models.Cyborg{Description: "Starter plan"},
		Status:    models.OrderStatusApproved,
		Hash:      "abc123",
		Amount:    199.99,
		CreatedAt: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC),
	}

	res := NewResource(order)

	assert.Equal(t, "maria lopez", res.UserName, "first word of each name part, lowercased")
	assert.Equal(t, "maria@example.com", res.UserEmail)
	assert.Equal(t, "Starter plan", res.Description)
	assert.Equal(t, "abc123", res.HashID)
	assert.Equal(t, "2024-04-01", res.Date)
	assert.Equal(t, "2024-04-02", res.UpdateDate)
}

func TestNewResource_MissingAssociations(t *testing.T) {
	t.Parallel()

	res := NewResource(models.Order{ID: 1, Amount: 10})
	assert.Equal(t, "", res.UserName)
	assert.Equal(t, "", res.Description)
}

func TestNewResourceCollection_Empty(t *testing.T) {
	t.Parallel()

	out := NewResourceCollection(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
