package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// flexibleNumber accepts 95, 95.5, "95" and "" from browser forms serialized
// as JSON. Empty values decode to zero.
type flexibleNumber float64

func (number *flexibleNumber) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*number = 0
		return nil
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*number = 0
			return nil
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return errors.New("invalid number")
		}
		*number = flexibleNumber(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	*number = flexibleNumber(value)
	return nil
}

// flexibleID keeps the raw token so that "12" and 12 both resolve.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		*id = flexibleID(text)
		return nil
	}
	*id = flexibleID(raw)
	return nil
}

type vitalsInput struct {
	BloodPressure string         `json:"bp"`
	Sugar         flexibleNumber `json:"sugar"`
	Weight        flexibleNumber `json:"weight"`
	Notes         string         `json:"notes"`
}

type customBillInput struct {
	BillCategory   string         `json:"billCategory"`
	TotalUnits     flexibleNumber `json:"totalUnits"`
	CurrentAmount  flexibleNumber `json:"currentAmount"`
	PreviousAmount flexibleNumber `json:"previousAmount"`
	Notes          string         `json:"notes"`
}

type dietStartInput struct {
	PlanID flexibleID `json:"planId"`
}

type dietSuggestInput struct {
	Query string `json:"query"`
}

type chatInput struct {
	Message string        `json:"message"`
	History []chatHistory `json:"history"`
}

// chatHistory accepts both {role, content} and {role, text}.
type chatHistory struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Text    string `json:"text"`
}
