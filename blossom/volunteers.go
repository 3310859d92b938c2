package blossom

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/TimJentzsch/buttercup/model"
)

// GetVolunteer fetches a volunteer by ID. A volunteer that the API cannot
// find is treated as an error, since the ID always comes from a reference
// URL the API itself handed out.
func (c *Client) GetVolunteer(ctx context.Context, id int64) (model.Volunteer, error) {
	params := url.Values{"id": {strconv.FormatInt(id, 10)}}

	var envelope resultsPage[model.Volunteer]
	if err := c.get(ctx, "volunteer", params, &envelope); err != nil {
		return model.Volunteer{}, err
	}
	if len(envelope.Results) == 0 {
		return model.Volunteer{}, fmt.Errorf("blossom: volunteer %d not found", id)
	}
	return envelope.Results[0], nil
}
