package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Model replies are only loosely typed: numbers arrive as strings ("3,450")
// and display values as bare numbers. The decoders below accept both forms
// so one mistyped field does not discard the whole analysis.

type lenientNumber struct {
	value *float64
}

func (number *lenientNumber) UnmarshalJSON(raw []byte) error {
	number.value = parseLenientNumber(raw)
	return nil
}

func (number lenientNumber) orZero() float64 {
	if number.value == nil {
		return 0
	}
	return *number.value
}

type lenientNumbers []float64

// Unparseable entries become 0 so the series stays aligned with its labels.
func (numbers *lenientNumbers) UnmarshalJSON(raw []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		*numbers = nil
		return nil
	}
	values := make([]float64, 0, len(items))
	for _, item := range items {
		value := 0.0
		if parsed := parseLenientNumber(item); parsed != nil {
			value = *parsed
		}
		values = append(values, value)
	}
	*numbers = values
	return nil
}

type lenientText string

func (text *lenientText) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	var value string
	if err := json.Unmarshal(trimmed, &value); err == nil {
		*text = lenientText(value)
		return nil
	}
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*text = ""
		return nil
	}
	*text = lenientText(trimmed)
	return nil
}

func parseLenientNumber(raw []byte) *float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	var direct float64
	if err := json.Unmarshal(trimmed, &direct); err == nil {
		return &direct
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return parseLeadingNumber(strings.ReplaceAll(text, ",", ""))
	}
	return nil
}

func (finding *Finding) UnmarshalJSON(raw []byte) error {
	type plain Finding
	decoded := struct {
		*plain
		Value        lenientText   `json:"value"`
		NumericValue lenientNumber `json:"numericValue"`
	}{plain: (*plain)(finding)}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	finding.Value = string(decoded.Value)
	finding.NumericValue = decoded.NumericValue.value
	return nil
}

func (tax *TaxLine) UnmarshalJSON(raw []byte) error {
	type plain TaxLine
	decoded := struct {
		*plain
		Amount lenientNumber `json:"amount"`
	}{plain: (*plain)(tax)}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	tax.Amount = decoded.Amount.orZero()
	return nil
}

func (dataset *ChartDataset) UnmarshalJSON(raw []byte) error {
	type plain ChartDataset
	decoded := struct {
		*plain
		Data lenientNumbers `json:"data"`
	}{plain: (*plain)(dataset)}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	dataset.Data = []float64(decoded.Data)
	return nil
}

func (analysis *BillAnalysis) UnmarshalJSON(raw []byte) error {
	type plain BillAnalysis
	decoded := struct {
		*plain
		TotalAmount lenientNumber `json:"totalAmount"`
	}{plain: (*plain)(analysis)}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	analysis.TotalAmount = decoded.TotalAmount.orZero()
	return nil
}

func (optimization *BillOptimization) UnmarshalJSON(raw []byte) error {
	type plain BillOptimization
	decoded := struct {
		*plain
		SavingsEstimate lenientNumber `json:"savingsEstimate"`
	}{plain: (*plain)(optimization)}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	optimization.SavingsEstimate = decoded.SavingsEstimate.orZero()
	return nil
}
