package assemble

import (
	"bytes"
	"encoding/json"
	"event-composer-backend/codec"
	"event-composer-backend/model"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() *model.Draft {
	return &model.Draft{
		Details: &model.Details{
			Title:       "Go Conference",
			Description: "Two days of Go",
			Category:    "tech",
			StartDate:   "2026-10-01",
			EndDate:     "2026-10-02",
			StartTime:   "09:00",
			EndTime:     "17:00",
			Location:    "Nairobi",
			Type:        model.EventInPerson,
		},
		EventSettings: &model.EventSettings{ServiceFee: model.ServiceFee{Enabled: true, Handling: "absorb"}},
		Trainers: []model.Trainer{
			{
				ID:          "123",
				Name:        "A",
				Description: "Keynote speaker",
				Image:       codec.EncodeDataURI("image/png", []byte("png-bytes")),
				Facebook:    "",
			},
		},
		BannerImage: codec.EncodeDataURI("image/jpeg", []byte("jpeg-bytes")),
		EventType:   model.EventTypeTicketed,
		Tickets: []model.Ticket{
			{ID: "456", Name: "VIP Access", Price: "50", Type: model.TicketVIP, Transferable: false},
		},
	}
}

func TestBuildStripsDisposableIDsAndImages(t *testing.T) {
	s, err := Build(completeDraft())
	require.Nil(t, err)

	var trainers []map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(s.Fields["trainers"]), &trainers))
	require.Len(t, trainers, 1)
	assert.NotContains(t, trainers[0], "id")
	assert.NotContains(t, trainers[0], "image")
	assert.Equal(t, "A", trainers[0]["name"])

	var tickets []map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(s.Fields["tickets"]), &tickets))
	require.Len(t, tickets, 1)
	assert.NotContains(t, tickets[0], "id")
	assert.Equal(t, "VIP Access", tickets[0]["name"])
	assert.Equal(t, false, tickets[0]["transferable"])
}

func TestBuildEmitsFilePartForEachTrainerImage(t *testing.T) {
	s, err := Build(completeDraft())
	require.Nil(t, err)

	require.Len(t, s.TrainerImages, 1)
	assert.Equal(t, "image/png", s.TrainerImages[0].MIME)
	assert.Equal(t, []byte("png-bytes"), s.TrainerImages[0].Data)

	assert.Equal(t, "image/jpeg", s.Banner.MIME)
	assert.Equal(t, []byte("jpeg-bytes"), s.Banner.Data)
	assert.Equal(t, "banner.jpeg", s.Banner.FileName)
}

func TestBuildSkipsFilePartForTrainerWithoutImage(t *testing.T) {
	d := completeDraft()
	d.Trainers = append(d.Trainers, model.Trainer{ID: "789", Name: "B", Description: "Workshop lead"})

	s, err := Build(d)
	require.Nil(t, err)

	var trainers []map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(s.Fields["trainers"]), &trainers))
	assert.Len(t, trainers, 2)
	assert.Len(t, s.TrainerImages, 1)
}

func TestBuildFieldValues(t *testing.T) {
	s, err := Build(completeDraft())
	require.Nil(t, err)

	assert.Equal(t, "Go Conference", s.Fields["eventTitle"])
	assert.Equal(t, "Two days of Go", s.Fields["eventDescription"])
	assert.Equal(t, "tech", s.Fields["eventCategory"])
	assert.Equal(t, model.EventTypeTicketed, s.Fields["eventType"])
	assert.Equal(t, "2026-10-01", s.Fields["startDate"])
	assert.Equal(t, "Nairobi", s.Fields["eventLocation"])

	var settings map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(s.Fields["eventSettings"]), &settings))
	assert.Contains(t, settings, "serviceFee")
}

func TestBuildRejectsDraftWithoutDetails(t *testing.T) {
	d := completeDraft()
	d.Details = nil

	_, err := Build(d)
	require.NotNil(t, err)
}

func TestBuildRejectsDraftWithoutBanner(t *testing.T) {
	d := completeDraft()
	d.BannerImage = ""

	_, err := Build(d)
	require.NotNil(t, err)
}

func TestEncodeProducesReadableMultipart(t *testing.T) {
	s, err := Build(completeDraft())
	require.Nil(t, err)

	var body bytes.Buffer
	contentType, err := s.Encode(&body)
	require.Nil(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.Nil(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(&body, params["boundary"])
	fields := map[string]string{}
	files := map[string][][]byte{}
	for {
		part, err := reader.NextPart()
		if err != nil {
			break
		}
		data, err := ioutil.ReadAll(part)
		require.Nil(t, err)
		if part.FileName() == "" {
			fields[part.FormName()] = string(data)
		} else {
			files[part.FormName()] = append(files[part.FormName()], data)
		}
	}

	assert.Equal(t, "Go Conference", fields["eventTitle"])
	assert.Contains(t, fields, "trainers")
	assert.Contains(t, fields, "tickets")
	assert.Contains(t, fields, "eventSettings")

	require.Len(t, files["bannerImage"], 1)
	assert.Equal(t, []byte("jpeg-bytes"), files["bannerImage"][0])
	require.Len(t, files["trainerImages"], 1)
	assert.Equal(t, []byte("png-bytes"), files["trainerImages"][0])
}
