package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	defaultComplexity = crypto.Medium
	defaultBatchCount = 5
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen      *crypto.Generator
	maxBatch int
}

// NewGeneratorService creates a new GeneratorService. maxBatch caps batch
// requests below crypto.MaxBatchCount; zero keeps the generator limit.
func NewGeneratorService(gen *crypto.Generator, maxBatch int) *GeneratorService {
	if maxBatch <= 0 || maxBatch > crypto.MaxBatchCount {
		maxBatch = crypto.MaxBatchCount
	}
	return &GeneratorService{gen: gen, maxBatch: maxBatch}
}

// Generate produces a single password for the request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	genReq, err := toGenerationRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.GenerateRequest(genReq)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Success:  true,
		Password: password,
		Length:   len(password),
	}, nil
}

// BatchGenerate produces count passwords, five when count is omitted.
func (s *GeneratorService) BatchGenerate(req model.BatchGenerateRequest) (model.BatchGenerateResponse, error) {
	genReq, err := toGenerationRequest(req.GenerateRequest)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}

	count, err := parseCount(req.Count)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}
	if count > s.maxBatch {
		return model.BatchGenerateResponse{}, crypto.ErrCountTooLarge
	}

	passwords, err := s.gen.BatchGenerate(genReq, count)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}

	return model.BatchGenerateResponse{
		Success:   true,
		Passwords: passwords,
		Count:     len(passwords),
	}, nil
}

// Tiers lists the canonical complexity tiers.
func (s *GeneratorService) Tiers() model.TiersResponse {
	tiers := crypto.Tiers()
	resp := model.TiersResponse{Success: true, Tiers: make([]model.TierResponse, len(tiers))}
	for i, t := range tiers {
		resp.Tiers[i] = model.TierResponse{
			Name:          string(t.Name),
			Aliases:       t.Aliases,
			DefaultLength: t.DefaultLength,
			MinLength:     t.MinLength,
			MaxLength:     t.MaxLength,
			AlphabetSize:  len(t.Alphabet),
		}
	}
	return resp
}

// toGenerationRequest applies request defaults: medium when complexity is
// missing, default custom flags for any flag left unset.
func toGenerationRequest(req model.GenerateRequest) (crypto.GenerationRequest, error) {
	complexity := defaultComplexity
	if req.Complexity != "" {
		c, err := crypto.ParseComplexity(req.Complexity)
		if err != nil {
			return crypto.GenerationRequest{}, err
		}
		complexity = c
	}

	length, err := parseLength(req.Length)
	if err != nil {
		return crypto.GenerationRequest{}, err
	}

	genReq := crypto.GenerationRequest{Complexity: complexity, Length: length}
	if complexity == crypto.Custom {
		defaults := crypto.DefaultFlags()
		genReq.Flags = &crypto.Flags{
			Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
			Numbers:   boolOrDefault(req.Numbers, defaults.Numbers),
			Special:   boolOrDefault(req.Special, defaults.Special),
		}
	}
	return genReq, nil
}

// parseLength returns 0 for a missing or null length. Anything other than a
// positive whole JSON number is ErrInvalidLength. Values beyond the int32 range are
// capped there so tiers still clamp them.
func parseLength(raw json.RawMessage) (int, error) {
	n, ok, err := parseWholeNumber(raw)
	if err != nil || (ok && n < 1) {
		return 0, crypto.ErrInvalidLength
	}
	return n, nil
}

// parseCount returns the default batch size for a missing or null count.
// Anything other than a positive whole JSON number is ErrInvalidCount.
func parseCount(raw json.RawMessage) (int, error) {
	n, ok, err := parseWholeNumber(raw)
	if err != nil || (ok && n < 1) {
		return 0, crypto.ErrInvalidCount
	}
	if !ok {
		return defaultBatchCount, nil
	}
	return n, nil
}

// parseWholeNumber decodes a JSON number with no fractional part, capped to
// the int32 range. ok is false when raw is empty or null.
func parseWholeNumber(raw json.RawMessage) (n int, ok bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, true, err
	}
	if f != math.Trunc(f) {
		return 0, true, errors.New("not a whole number")
	}
	f = max(min(f, math.MaxInt32), math.MinInt32)
	return int(f), true, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
