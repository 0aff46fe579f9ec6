package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"unit-converter/internal/conversion"
	"unit-converter/internal/logger"
	"unit-converter/internal/models"
)

const (
	// InvalidNumberMessage replaces the result when the value does not parse
	InvalidNumberMessage = "Please enter a valid number"
	// InvalidBaseInputMessage replaces the base converter result on bad digits or bases
	InvalidBaseInputMessage = "Error: Please enter valid values"

	BaseConverterName = "Base Converter"
)

// ConversionService turns screen input into display text
type ConversionService struct {
	catalog *conversion.Catalog
	history *models.HistoryRepository
	logger  logger.Logger
	now     func() time.Time
}

// NewConversionService creates a new conversion service
func NewConversionService(
	catalog *conversion.Catalog,
	history *models.HistoryRepository,
	log logger.Logger,
) *ConversionService {
	return &ConversionService{
		catalog: catalog,
		history: history,
		logger:  log,
		now:     time.Now,
	}
}

// Categories returns every category in menu order
func (cs *ConversionService) Categories() []*conversion.Category {
	return cs.catalog.Categories()
}

// Groups returns the menu sections
func (cs *ConversionService) Groups() []conversion.Group {
	return cs.catalog.Groups()
}

// Category looks up a category by name
func (cs *ConversionService) Category(name string) (*conversion.Category, error) {
	return cs.catalog.Category(name)
}

// Convert parses the request value and converts it. Failures never
// escape as errors: they come back as a result whose Text is the message
// to show in place of the value.
func (cs *ConversionService) Convert(ctx context.Context, req models.ConversionRequest) (result models.ConversionResult) {
	defer cs.record(&result)
	defer cs.recoverInto(&result)

	result = models.ConversionResult{
		Category:  req.Category,
		Input:     req.Input,
		From:      req.From,
		To:        req.To,
		Timestamp: cs.now(),
	}

	if err := ctx.Err(); err != nil {
		return cs.fail(result, err)
	}

	category, err := cs.catalog.Category(req.Category)
	if err != nil {
		return cs.fail(result, err)
	}

	value, err := conversion.ParseValue(req.Input)
	if err != nil {
		return cs.fail(result, err)
	}

	converted, err := category.Convert(value, req.From, req.To)
	if err != nil {
		return cs.fail(result, err)
	}

	result.Value = converted
	result.Text = conversion.FormatResult(category, converted, req.To)

	cs.logger.Debug("ConversionService", "conversion complete", map[string]interface{}{
		"category": req.Category,
		"from":     req.From,
		"to":       req.To,
		"value":    value,
		"result":   converted,
	})
	return result
}

// ConvertBase rewrites a whole number between numeral bases
func (cs *ConversionService) ConvertBase(ctx context.Context, req models.BaseRequest) (result models.ConversionResult) {
	defer cs.record(&result)
	defer cs.recoverInto(&result)

	result = models.ConversionResult{
		Category:  BaseConverterName,
		Input:     req.Input,
		From:      "base " + strconv.Itoa(req.FromBase),
		To:        "base " + strconv.Itoa(req.ToBase),
		Timestamp: cs.now(),
	}

	if err := ctx.Err(); err != nil {
		return cs.fail(result, err)
	}

	converted, err := conversion.ConvertBase(req.Input, req.FromBase, req.ToBase)
	if err != nil {
		return cs.fail(result, err)
	}

	result.Text = converted
	cs.logger.Debug("ConversionService", "base conversion complete", map[string]interface{}{
		"from_base": req.FromBase,
		"to_base":   req.ToBase,
		"result":    converted,
	})
	return result
}

// fail sets the display message for err. Invalid input gets the
// designated message; anything else is reported generically.
func (cs *ConversionService) fail(result models.ConversionResult, err error) models.ConversionResult {
	result.Failed = true
	switch {
	case errors.Is(err, conversion.ErrInvalidNumber):
		result.Text = InvalidNumberMessage
	case errors.Is(err, conversion.ErrInvalidDigit), errors.Is(err, conversion.ErrInvalidBase):
		result.Text = InvalidBaseInputMessage
	default:
		result.Text = fmt.Sprintf("Error: %v", err)
	}

	cs.logger.Warning("ConversionService", "conversion rejected", map[string]interface{}{
		"category": result.Category,
		"input":    result.Input,
		"reason":   err.Error(),
	})
	return result
}

func (cs *ConversionService) record(result *models.ConversionResult) {
	if cs.history != nil {
		cs.history.Add(*result)
	}
}

func (cs *ConversionService) recoverInto(result *models.ConversionResult) {
	r := recover()
	if r == nil {
		return
	}

	err := fmt.Errorf("unexpected failure: %v", r)
	cs.logger.Error("ConversionService", err, map[string]interface{}{
		"category": result.Category,
	})
	result.Failed = true
	result.Text = fmt.Sprintf("Error: %v", err)
}
