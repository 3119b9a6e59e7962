package kennitala

import (
	"context"
	"log/slog"
	"sync"
	"time"

	apierrors "github.com/olgasafonova/iceland-registry-mcp-server/internal/errors"
	"github.com/olgasafonova/iceland-registry-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the core functions with Args/Result types for MCP
// integration. The Service serializes generator access, so it is safe to
// share across handlers.

const maxGenerateCount = 100

// Service exposes the kennitala operations to the MCP tool layer.
type Service struct {
	logger *slog.Logger

	mu  sync.Mutex
	gen *Generator
}

// NewService creates a Service using the given generator for the
// generation tools.
func NewService(logger *slog.Logger, gen *Generator) *Service {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Service{logger: logger, gen: gen}
}

// ValidateMCP checks a kennitala under both checksum policies.
func (s *Service) ValidateMCP(ctx context.Context, args ValidateArgs) (ValidateResult, error) {
	if args.Kennitala == "" {
		return ValidateResult{}, apierrors.NewValidationError("kennitala", "", "is required")
	}

	digits := Normalize(args.Kennitala)
	result := ValidateResult{
		Strict:    IsValid(digits, true),
		Relaxed:   IsValid(digits, false),
		IsDataset: IsDatasetID(digits),
	}
	metrics.RecordValidation("strict", result.Strict)
	metrics.RecordValidation("relaxed", result.Relaxed)
	if len(digits) != 10 {
		result.Message = "kennitala must contain exactly 10 digits"
		return result, nil
	}

	result.Digits = digits
	result.Formatted = formatDigits(digits)
	if isCompanyDigits(digits) {
		result.EntityType = string(EntityCompany)
	} else {
		result.EntityType = string(EntityIndividual)
	}
	if !result.Relaxed {
		result.Message = "kennitala does not encode a real calendar date"
	} else if !result.Strict {
		result.Message = "check digit mismatch; valid only under the relaxed policy"
	}
	return result, nil
}

// ParseMCP returns the structured form of a kennitala.
func (s *Service) ParseMCP(ctx context.Context, args ParseArgs) (ParseResult, error) {
	if args.Kennitala == "" {
		return ParseResult{}, apierrors.NewValidationError("kennitala", "", "is required")
	}
	enforce := true
	if args.EnforceChecksum != nil {
		enforce = *args.EnforceChecksum
	}

	parsed, err := Parse(args.Kennitala, enforce)
	if err != nil {
		return ParseResult{}, apierrors.NewValidationError("kennitala", args.Kennitala, err.Error())
	}
	return ParseResult{
		Digits:           parsed.Digits,
		Formatted:        parsed.Formatted,
		BirthDate:        parsed.BirthDate.Format("2006-01-02"),
		CenturyIndicator: parsed.CenturyIndicator,
		EntityType:       string(parsed.EntityType),
	}, nil
}

// FormatMCP renders the canonical DDMMYY-NNNX form.
func (s *Service) FormatMCP(ctx context.Context, args FormatArgs) (FormatResult, error) {
	formatted, err := Format(args.Kennitala)
	if err != nil {
		return FormatResult{}, apierrors.NewValidationError("kennitala", args.Kennitala, err.Error())
	}
	return FormatResult{Formatted: formatted}, nil
}

// MaskMCP renders a partially hidden form for safe display.
func (s *Service) MaskMCP(ctx context.Context, args MaskArgs) (MaskResult, error) {
	tail := 4
	if args.VisibleTail != nil {
		tail = *args.VisibleTail
	}
	if tail < 0 || tail > 10 {
		return MaskResult{}, apierrors.NewValidationError("visible_tail", "", "must be between 0 and 10")
	}

	masked, err := Mask(args.Kennitala, tail)
	if err != nil {
		return MaskResult{}, apierrors.NewValidationError("kennitala", args.Kennitala, err.Error())
	}
	return MaskResult{Masked: masked}, nil
}

// GeneratePersonalMCP generates synthetic personal kennitölur.
func (s *Service) GeneratePersonalMCP(ctx context.Context, args GenerateArgs) (GenerateResult, error) {
	return s.generate(args, false)
}

// GenerateCompanyMCP generates synthetic company kennitölur.
func (s *Service) GenerateCompanyMCP(ctx context.Context, args GenerateArgs) (GenerateResult, error) {
	return s.generate(args, true)
}

func (s *Service) generate(args GenerateArgs, company bool) (GenerateResult, error) {
	count := args.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > maxGenerateCount {
		return GenerateResult{}, apierrors.NewValidationError("count", "", "must be between 1 and 100")
	}
	if args.Date != "" && (args.Start != "" || args.End != "") {
		return GenerateResult{}, apierrors.NewValidationError("date", args.Date, "cannot be combined with start/end")
	}
	if (args.Start == "") != (args.End == "") {
		return GenerateResult{}, apierrors.NewValidationError("start", args.Start, "start and end must be supplied together")
	}

	var date, start, end time.Time
	var err error
	if args.Date != "" {
		if date, err = parseISODate("date", args.Date); err != nil {
			return GenerateResult{}, err
		}
	}
	if args.Start != "" {
		if start, err = parseISODate("start", args.Start); err != nil {
			return GenerateResult{}, err
		}
		if end, err = parseISODate("end", args.End); err != nil {
			return GenerateResult{}, err
		}
	}

	opts := GenOptions{SkipChecksum: args.SkipChecksum, Raw: args.Raw}
	entity := EntityIndividual
	if company {
		entity = EntityCompany
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var kt string
		switch {
		case args.Date != "" && company:
			kt, err = s.gen.CompanyForDate(date, opts)
		case args.Date != "":
			kt, err = s.gen.PersonalForDate(date, opts)
		case args.Start != "" && company:
			kt, err = s.gen.RandomCompany(start, end, opts)
		case args.Start != "":
			kt, err = s.gen.RandomPersonal(start, end, opts)
		case company:
			kt, err = s.gen.Company(opts)
		default:
			kt, err = s.gen.Personal(opts)
		}
		if err != nil {
			return GenerateResult{}, apierrors.NewValidationError("date", "", err.Error())
		}
		ids = append(ids, kt)
	}

	metrics.RecordGeneration(string(entity), !args.SkipChecksum, len(ids))
	return GenerateResult{
		Kennitolur:  ids,
		EntityType:  string(entity),
		StrictValid: !args.SkipChecksum,
	}, nil
}

func parseISODate(field, value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apierrors.NewValidationError(field, value, "must be a YYYY-MM-DD date")
	}
	return d.UTC(), nil
}
