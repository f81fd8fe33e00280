package aggregate

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/iceandfire"
)

// HouseDetail is a house together with the sworn members that could be loaded,
// in the order the house lists them.
type HouseDetail struct {
	House   *iceandfire.House
	Members []iceandfire.Character
}

// GroupFetchError reports that the house itself could not be loaded. Use
// errors.Is with the iceandfire sentinels to tell a malformed payload from a
// transport or API failure.
type GroupFetchError struct {
	ID  string
	Err error
}

func (e *GroupFetchError) Error() string {
	return fmt.Sprintf("unable to load house %s: %s", e.ID, e.Err)
}

func (e *GroupFetchError) Unwrap() error {
	return e.Err
}

// Aggregator resolves a house and its sworn members.
type Aggregator struct {
	client         iceandfire.Client
	maxConcurrency int
}

// NewAggregator creates an Aggregator. maxConcurrency bounds the member
// requests in flight for one house; 0 fetches all members at once.
func NewAggregator(client iceandfire.Client, maxConcurrency int) *Aggregator {
	return &Aggregator{client: client, maxConcurrency: maxConcurrency}
}

// House loads house id, then all of its sworn members concurrently. A member
// that fails to load, including one with an unusable reference, is left out of
// the result. Errors are *GroupFetchError, except that House returns ctx.Err()
// when ctx is done before the members settle.
func (a *Aggregator) House(ctx context.Context, id string) (*HouseDetail, error) {
	logger := clog.UsingCtx(clog.AggregateCtx).WithField("house", id)

	house, err := a.client.GetHouse(ctx, id)
	if err != nil {
		logger.WithError(err).Warn("house fetch failed")
		return nil, &GroupFetchError{ID: id, Err: err}
	}

	if len(house.SwornMembers) == 0 {
		return &HouseDetail{House: house, Members: []iceandfire.Character{}}, nil
	}

	outcomes := AllSettled(ctx, house.SwornMembers, a.maxConcurrency, a.fetchMember)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, failed := range Failures(outcomes) {
		logger.WithFields(log.Fields{
			"member": failed.Input,
			"error":  failed.Err,
		}).Warn("dropping sworn member")
	}

	members := Successes(outcomes)
	logger.WithFields(log.Fields{
		"requested": len(outcomes),
		"loaded":    len(members),
	}).Debug("sworn members settled")

	return &HouseDetail{House: house, Members: members}, nil
}

func (a *Aggregator) fetchMember(ctx context.Context, ref string) (iceandfire.Character, error) {
	character, err := a.client.GetCharacterByURL(ctx, ref)
	if err != nil {
		return iceandfire.Character{}, err
	}

	return *character, nil
}
