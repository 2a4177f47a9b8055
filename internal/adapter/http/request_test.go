package httpadapter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

func TestClientPayloadValidation(t *testing.T) {
	valid := clientPayload{ClientID: uuid.New(), Login: "u1", Age: 25, Location: "Moscow", Gender: "male"}

	c, err := valid.toDomain()
	require.NoError(t, err)
	require.Equal(t, domain.GenderMale, c.Gender, "gender is normalised to upper case")

	cases := map[string]clientPayload{
		"nil id":      {Login: "u", Age: 25, Gender: "MALE"},
		"no login":    {ClientID: uuid.New(), Age: 25, Gender: "MALE"},
		"age too big": {ClientID: uuid.New(), Login: "u", Age: 101, Gender: "MALE"},
		"gender ALL":  {ClientID: uuid.New(), Login: "u", Age: 25, Gender: "ALL"},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.toDomain()
			require.Error(t, err)
		})
	}
}

func TestTargetingPayloadValidation(t *testing.T) {
	var nilPayload *targetingPayload
	got, err := nilPayload.toDomain()
	require.NoError(t, err)
	require.Nil(t, got, "absent targeting stays nil")

	p := &targetingPayload{Gender: strp("all"), AgeFrom: intp(18), Location: strp("")}
	rule, err := p.toDomain()
	require.NoError(t, err)
	require.Equal(t, domain.GenderAll, *rule.Gender)
	require.Nil(t, rule.Location, "empty location means no constraint")
	require.Nil(t, rule.AgeTo)

	_, err = (&targetingPayload{Gender: strp("OTHER")}).toDomain()
	require.Error(t, err)
}

func TestCreateCampaignValidation(t *testing.T) {
	base := createCampaignRequest{
		ImpressionsLimit:  intp(100),
		ClicksLimit:       intp(10),
		CostPerImpression: floatp(1),
		CostPerClick:      floatp(5),
		AdTitle:           "Title",
		AdText:            "Some ad text",
		StartDate:         intp(0),
		EndDate:           intp(10),
	}

	advID := uuid.New()
	d, err := base.toDraft(advID, false)
	require.NoError(t, err)
	require.Equal(t, advID, d.AdvertiserID)

	t.Run("text waived when generated", func(t *testing.T) {
		req := base
		req.AdText = ""
		d, err := req.toDraft(advID, true)
		require.NoError(t, err)
		require.True(t, d.GenerateText)
	})

	t.Run("text required otherwise", func(t *testing.T) {
		req := base
		req.AdText = ""
		_, err := req.toDraft(advID, false)
		require.Error(t, err)
	})

	t.Run("flight must be ordered", func(t *testing.T) {
		req := base
		req.StartDate, req.EndDate = intp(5), intp(4)
		_, err := req.toDraft(advID, false)
		require.Error(t, err)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		req := base
		req.CostPerClick = floatp(-0.1)
		_, err := req.toDraft(advID, false)
		require.Error(t, err)
	})
}

func TestUpdateCampaignValidation(t *testing.T) {
	u, err := updateCampaignRequest{AdTitle: strp("New title")}.toUpdate()
	require.NoError(t, err)
	require.Nil(t, u.AdText, "omitted fields stay nil")
	require.Equal(t, "New title", *u.AdTitle)

	_, err = updateCampaignRequest{StartDate: intp(-1)}.toUpdate()
	require.Error(t, err)
}
