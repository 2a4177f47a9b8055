package httpadapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// Request and response payloads. Validation happens here, at the boundary;
// the core assumes its inputs are well-formed.

const (
	minTextLen = 3
	maxTextLen = 255
)

type targetingPayload struct {
	Gender   *string `json:"gender,omitempty"`
	AgeFrom  *int    `json:"age_from,omitempty"`
	AgeTo    *int    `json:"age_to,omitempty"`
	Location *string `json:"location,omitempty"`
}

// toDomain validates and converts a targeting rule. Gender is normalised to
// upper case; an empty location means "no constraint" and is dropped.
func (p *targetingPayload) toDomain() (*domain.Targeting, error) {
	if p == nil {
		return nil, nil
	}
	t := &domain.Targeting{AgeFrom: p.AgeFrom, AgeTo: p.AgeTo}
	if p.Gender != nil {
		g := domain.Gender(strings.ToUpper(*p.Gender))
		if !g.Valid() {
			return nil, fmt.Errorf("gender must be one of MALE, FEMALE, ALL")
		}
		t.Gender = &g
	}
	if p.Location != nil && *p.Location != "" {
		t.Location = p.Location
	}
	return t, nil
}

func targetingFromDomain(t *domain.Targeting) *targetingPayload {
	if t == nil {
		return nil
	}
	p := &targetingPayload{AgeFrom: t.AgeFrom, AgeTo: t.AgeTo, Location: t.Location}
	if t.Gender != nil {
		g := string(*t.Gender)
		p.Gender = &g
	}
	return p
}

type clientPayload struct {
	ClientID uuid.UUID `json:"client_id"`
	Login    string    `json:"login"`
	Age      int       `json:"age"`
	Location string    `json:"location"`
	Gender   string    `json:"gender"`
}

func (p clientPayload) toDomain() (domain.Client, error) {
	if p.ClientID == uuid.Nil {
		return domain.Client{}, errors.New("client_id is required")
	}
	if p.Login == "" {
		return domain.Client{}, errors.New("login is required")
	}
	if p.Age < 0 || p.Age > 100 {
		return domain.Client{}, errors.New("age must be between 0 and 100")
	}
	if len(p.Location) > maxTextLen {
		return domain.Client{}, errors.New("location is too long")
	}
	g := domain.Gender(strings.ToUpper(p.Gender))
	if g != domain.GenderMale && g != domain.GenderFemale {
		return domain.Client{}, errors.New("gender must be MALE or FEMALE")
	}
	return domain.Client{
		ID:       p.ClientID,
		Login:    p.Login,
		Age:      p.Age,
		Location: p.Location,
		Gender:   g,
	}, nil
}

func clientFromDomain(c domain.Client) clientPayload {
	return clientPayload{
		ClientID: c.ID,
		Login:    c.Login,
		Age:      c.Age,
		Location: c.Location,
		Gender:   string(c.Gender),
	}
}

type advertiserPayload struct {
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Name         string    `json:"name"`
}

func (p advertiserPayload) toDomain() (domain.Advertiser, error) {
	if p.AdvertiserID == uuid.Nil {
		return domain.Advertiser{}, errors.New("advertiser_id is required")
	}
	if p.Name == "" {
		return domain.Advertiser{}, errors.New("name is required")
	}
	return domain.Advertiser{ID: p.AdvertiserID, Name: p.Name}, nil
}

type mlScoreRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Score        *int      `json:"score"`
}

func (p mlScoreRequest) toDomain() (domain.MLScore, error) {
	if p.ClientID == uuid.Nil || p.AdvertiserID == uuid.Nil {
		return domain.MLScore{}, errors.New("client_id and advertiser_id are required")
	}
	if p.Score == nil {
		return domain.MLScore{}, errors.New("score is required")
	}
	return domain.MLScore{ClientID: p.ClientID, AdvertiserID: p.AdvertiserID, Score: *p.Score}, nil
}

type createCampaignRequest struct {
	ImpressionsLimit  *int              `json:"impressions_limit"`
	ClicksLimit       *int              `json:"clicks_limit"`
	CostPerImpression *float64          `json:"cost_per_impression"`
	CostPerClick      *float64          `json:"cost_per_click"`
	AdTitle           string            `json:"ad_title"`
	AdText            string            `json:"ad_text"`
	StartDate         *int              `json:"start_date"`
	EndDate           *int              `json:"end_date"`
	Targeting         *targetingPayload `json:"targeting"`
}

// toDraft validates the create payload. The ad text requirement is waived
// when the text will be generated.
func (p createCampaignRequest) toDraft(advertiserID uuid.UUID, generate bool) (port.CampaignDraft, error) {
	var d port.CampaignDraft
	switch {
	case p.ImpressionsLimit == nil || *p.ImpressionsLimit < 0:
		return d, errors.New("impressions_limit must be a non-negative integer")
	case p.ClicksLimit == nil || *p.ClicksLimit < 0:
		return d, errors.New("clicks_limit must be a non-negative integer")
	case p.CostPerImpression == nil || *p.CostPerImpression < 0:
		return d, errors.New("cost_per_impression must be non-negative")
	case p.CostPerClick == nil || *p.CostPerClick < 0:
		return d, errors.New("cost_per_click must be non-negative")
	case len(p.AdTitle) < minTextLen || len(p.AdTitle) > maxTextLen:
		return d, errors.New("ad_title must be 3 to 255 characters")
	case !generate && (len(p.AdText) < minTextLen || len(p.AdText) > maxTextLen):
		return d, errors.New("ad_text must be 3 to 255 characters")
	case p.StartDate == nil || *p.StartDate < 0:
		return d, errors.New("start_date must be a non-negative integer")
	case p.EndDate == nil || *p.EndDate < 0:
		return d, errors.New("end_date must be a non-negative integer")
	case *p.EndDate < *p.StartDate:
		return d, errors.New("end_date must not precede start_date")
	}

	targeting, err := p.Targeting.toDomain()
	if err != nil {
		return d, err
	}
	return port.CampaignDraft{
		AdvertiserID:      advertiserID,
		ImpressionsLimit:  *p.ImpressionsLimit,
		ClicksLimit:       *p.ClicksLimit,
		CostPerImpression: *p.CostPerImpression,
		CostPerClick:      *p.CostPerClick,
		AdTitle:           p.AdTitle,
		AdText:            p.AdText,
		StartDate:         *p.StartDate,
		EndDate:           *p.EndDate,
		Targeting:         targeting,
		GenerateText:      generate,
	}, nil
}

type updateCampaignRequest struct {
	ImpressionsLimit  *int              `json:"impressions_limit"`
	ClicksLimit       *int              `json:"clicks_limit"`
	CostPerImpression *float64          `json:"cost_per_impression"`
	CostPerClick      *float64          `json:"cost_per_click"`
	AdTitle           *string           `json:"ad_title"`
	AdText            *string           `json:"ad_text"`
	StartDate         *int              `json:"start_date"`
	EndDate           *int              `json:"end_date"`
	Targeting         *targetingPayload `json:"targeting"`
}

func (p updateCampaignRequest) toUpdate() (port.CampaignUpdate, error) {
	var u port.CampaignUpdate
	for name, v := range map[string]*int{
		"impressions_limit": p.ImpressionsLimit,
		"clicks_limit":      p.ClicksLimit,
		"start_date":        p.StartDate,
		"end_date":          p.EndDate,
	} {
		if v != nil && *v < 0 {
			return u, fmt.Errorf("%s must be non-negative", name)
		}
	}
	for name, v := range map[string]*float64{
		"cost_per_impression": p.CostPerImpression,
		"cost_per_click":      p.CostPerClick,
	} {
		if v != nil && *v < 0 {
			return u, fmt.Errorf("%s must be non-negative", name)
		}
	}
	for name, v := range map[string]*string{"ad_title": p.AdTitle, "ad_text": p.AdText} {
		if v != nil && len(*v) > maxTextLen {
			return u, fmt.Errorf("%s is too long", name)
		}
	}

	targeting, err := p.Targeting.toDomain()
	if err != nil {
		return u, err
	}
	return port.CampaignUpdate{
		ImpressionsLimit:  p.ImpressionsLimit,
		ClicksLimit:       p.ClicksLimit,
		CostPerImpression: p.CostPerImpression,
		CostPerClick:      p.CostPerClick,
		AdTitle:           p.AdTitle,
		AdText:            p.AdText,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Targeting:         targeting,
	}, nil
}

type campaignPayload struct {
	CampaignID        uuid.UUID         `json:"campaign_id"`
	AdvertiserID      uuid.UUID         `json:"advertiser_id"`
	ImpressionsLimit  int               `json:"impressions_limit"`
	ClicksLimit       int               `json:"clicks_limit"`
	CostPerImpression float64           `json:"cost_per_impression"`
	CostPerClick      float64           `json:"cost_per_click"`
	AdTitle           string            `json:"ad_title"`
	AdText            string            `json:"ad_text"`
	StartDate         int               `json:"start_date"`
	EndDate           int               `json:"end_date"`
	Targeting         *targetingPayload `json:"targeting"`
}

func campaignFromDomain(c domain.Campaign) campaignPayload {
	return campaignPayload{
		CampaignID:        c.ID,
		AdvertiserID:      c.AdvertiserID,
		ImpressionsLimit:  c.ImpressionsLimit,
		ClicksLimit:       c.ClicksLimit,
		CostPerImpression: c.CostPerImpression,
		CostPerClick:      c.CostPerClick,
		AdTitle:           c.AdTitle,
		AdText:            c.AdText,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Targeting:         targetingFromDomain(c.Targeting),
	}
}

type adResponse struct {
	AdID         uuid.UUID `json:"ad_id"`
	AdTitle      string    `json:"ad_title"`
	AdText       string    `json:"ad_text"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
}

type clickRequest struct {
	ClientID uuid.UUID `json:"client_id"`
}

type timeRequest struct {
	CurrentDate *int `json:"current_date"`
}

type statsSummaryResponse struct {
	ImpressionsCount int64   `json:"impressions_count"`
	ClicksCount      int64   `json:"clicks_count"`
	Conversion       float64 `json:"conversion"`
	SpentImpressions float64 `json:"spent_impressions"`
	SpentClicks      float64 `json:"spent_clicks"`
	SpentTotal       float64 `json:"spent_total"`
}

func summaryFromPort(s port.StatsSummary) statsSummaryResponse {
	return statsSummaryResponse{
		ImpressionsCount: s.Impressions,
		ClicksCount:      s.Clicks,
		Conversion:       s.Conversion,
		SpentImpressions: s.SpentImpressions,
		SpentClicks:      s.SpentClicks,
		SpentTotal:       s.SpentTotal,
	}
}

type dailyStatsResponse struct {
	ImpressionsCount int64   `json:"impressions_count"`
	ClicksCount      int64   `json:"clicks_count"`
	SpentImpressions float64 `json:"spent_impressions"`
	SpentClicks      float64 `json:"spent_clicks"`
	SpentTotal       float64 `json:"spent_total"`
	Date             int     `json:"date"`
}

func dailyFromDomain(stats []domain.DailyStats) []dailyStatsResponse {
	out := make([]dailyStatsResponse, len(stats))
	for i, s := range stats {
		out[i] = dailyStatsResponse{
			ImpressionsCount: s.Impressions,
			ClicksCount:      s.Clicks,
			SpentImpressions: s.SpentImpressions,
			SpentClicks:      s.SpentClicks,
			SpentTotal:       s.SpentImpressions + s.SpentClicks,
			Date:             s.Day,
		}
	}
	return out
}

type validateTextRequest struct {
	AdText *string `json:"ad_text"`
}

type generateTextRequest struct {
	AdName         *string           `json:"ad_name"`
	AdvertiserName *string           `json:"advertiser_name"`
	Targeting      *targetingPayload `json:"targeting"`
}
