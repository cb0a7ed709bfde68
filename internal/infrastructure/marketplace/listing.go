package marketplace

import (
	"encoding/json"
	"net/http"

	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// decodeListing converts the backend listing resource into the domain
// snapshot the pricing engine consumes
func decodeListing(body []byte) (*entity.Listing, error) {
	var payload listingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Unexpected listing response: "+err.Error())
	}

	return &entity.Listing{
		ID:       payload.Data.ID,
		Price:    payload.Data.Attributes.Price,
		UnitType: payload.Data.Attributes.PublicData.UnitType,
		AuthorID: payload.Data.Relationships.Author.Data.ID,
		Deleted:  payload.Data.Attributes.Deleted,
	}, nil
}
