package pubsub

import (
	"encoding/json"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/constants"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/service"

	"github.com/pkg/errors"
)

// dutyMessage is a PharmacyDutyEvent ready for any transport: the JSON body
// plus attributes subscribers can filter on without decoding it.
type dutyMessage struct {
	data       []byte
	attributes map[string]string
}

func newDutyMessage(event *service.PharmacyDutyEvent) (*dutyMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode duty event")
	}

	return &dutyMessage{data: data, attributes: eventAttributes(event)}, nil
}

func eventAttributes(event *service.PharmacyDutyEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType:  constants.EventTypePharmacyOnDuty,
		constants.AttrPharmacyID: event.PharmacyID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}
	if event.ActorID != "" {
		attributes[constants.AttrActorID] = event.ActorID
	}

	return attributes
}
