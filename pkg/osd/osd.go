// Package osd decodes on-screen-display notifications sent by an external
// display-control application and applies them to the status model.
//
// A notification is a JSON object:
//
//	{
//	  "displayID": 1,
//	  "controlTarget": "combinedBrightness",
//	  "value": 0.5,
//	  "maxValue": 1,
//	  "symbol": "sun.max.fill",
//	  "text": "",
//	  "lock": false
//	}
//
// value is relative to maxValue. A missing or non-positive maxValue means
// value is already in [0, 1].
package osd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
)

// Control targets understood by the notch.
const (
	TargetCombinedBrightness = "combinedBrightness"
	TargetHardwareBrightness = "hardwareBrightness"
	TargetSoftwareBrightness = "softwareBrightness"
	TargetVolume             = "volume"
	TargetMute               = "mute"
)

var (
	// ErrMalformed is returned for payloads that are not a notification.
	ErrMalformed = errors.New("malformed OSD notification")
	// ErrUnknownTarget is returned for control targets the notch does not mirror.
	ErrUnknownTarget = errors.New("unknown OSD control target")
)

// Notification is one OSD event.
type Notification struct {
	DisplayID     int     `json:"displayID,omitempty"`
	ControlTarget string  `json:"controlTarget"`
	Value         float64 `json:"value"`
	MaxValue      float64 `json:"maxValue,omitempty"`
	Symbol        string  `json:"symbol,omitempty"`
	Text          string  `json:"text,omitempty"`
	Lock          bool    `json:"lock,omitempty"`
}

// Decode parses a notification payload.
func Decode(data []byte) (Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return Notification{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if n.ControlTarget == "" {
		return Notification{}, fmt.Errorf("%w: missing controlTarget", ErrMalformed)
	}
	return n, nil
}

// Level returns the notification value normalised to [0, 1].
func (n Notification) Level() float64 {
	v := n.Value
	if n.MaxValue > 0 {
		v /= n.MaxValue
	}
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// IsBrightness reports whether the notification targets a brightness control.
func (n Notification) IsBrightness() bool {
	switch n.ControlTarget {
	case TargetCombinedBrightness, TargetHardwareBrightness, TargetSoftwareBrightness:
		return true
	}
	return false
}

// Apply mirrors the notification into m.
func (n Notification) Apply(m *status.Model) error {
	switch {
	case n.IsBrightness():
		m.SetBrightness(n.Level(), status.SourceOSD)
	case n.ControlTarget == TargetVolume:
		m.SetVolume(n.Level(), status.SourceOSD)
	case n.ControlTarget == TargetMute:
		m.SetMuted(n.Value != 0, status.SourceOSD)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, n.ControlTarget)
	}
	return nil
}

// FromSnapshot encodes the mirrored levels as notifications, so peers can
// stay in sync with changes made on the notch.
func FromSnapshot(s status.Snapshot) []Notification {
	mute := 0.0
	if s.Muted {
		mute = 1
	}
	return []Notification{
		{ControlTarget: TargetVolume, Value: s.Volume, MaxValue: 1},
		{ControlTarget: TargetMute, Value: mute, MaxValue: 1},
		{ControlTarget: TargetCombinedBrightness, Value: s.Brightness, MaxValue: 1},
	}
}
