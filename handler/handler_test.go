package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"event-composer-backend/assemble"
	"event-composer-backend/draft"
	"event-composer-backend/model"
	"event-composer-backend/wizard"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	flags   model.FeatureFlags
	receipt *model.PublishReceipt
}

func (f *fakeAPI) Features(ctx context.Context) (*model.FeatureFlags, error) {
	return &f.flags, nil
}

func (f *fakeAPI) Publish(ctx context.Context, s *assemble.Submission) (*model.PublishReceipt, error) {
	return f.receipt, nil
}

func newTestService(t *testing.T) (*wizard.Wizard, draft.Store) {
	dir, err := ioutil.TempDir("", "handler")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	store := draft.NewFileStore(filepath.Join(dir, "event-draft.json"))
	return wizard.NewWizard(store, &fakeAPI{receipt: &model.PublishReceipt{EventID: "ev-1"}}), store
}

func TestSaveDetailsRejectsMalformedBody(t *testing.T) {
	service, _ := newTestService(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/wizard/details", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	SaveDetails(service)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveDetailsBlocksIncompleteStep(t *testing.T) {
	service, _ := newTestService(t)

	body := `{"data":{"details":{"title":"Go Conference"}}}`
	req := httptest.NewRequest(http.MethodPut, "/v1/wizard/details", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SaveDetails(service)(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSaveDetailsAdvancesWizard(t *testing.T) {
	service, _ := newTestService(t)

	body := `{"data":{"details":{
		"title":"Go Conference","description":"Two days of Go","category":"tech",
		"startDate":"2026-10-01","endDate":"2026-10-02","startTime":"09:00",
		"endTime":"17:00","location":"Nairobi","type":"in-person"}}}`
	req := httptest.NewRequest(http.MethodPut, "/v1/wizard/details", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SaveDetails(service)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data struct {
			Wizard model.WizardState `json:"wizard"`
		} `json:"data"`
	}
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "set-eventsettings", res.Data.Wizard.ActiveStep)
}

func TestAddTicketReturnsCreated(t *testing.T) {
	service, _ := newTestService(t)

	body := `{"data":{"ticket":{"name":"VIP Access","price":"50","type":"vip"}}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/wizard/tickets", strings.NewReader(body))
	rec := httptest.NewRecorder()

	AddTicket(service)(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res struct {
		Data struct {
			Ticket model.Ticket `json:"ticket"`
		} `json:"data"`
	}
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Data.Ticket.ID)
}

func TestRemoveTrainerUsesPathID(t *testing.T) {
	service, store := newTestService(t)

	added, err := service.AddTrainer(context.Background(), model.Trainer{Name: "Jane", Description: "Keynote speaker"})
	require.Nil(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/v1/wizard/trainers/"+added.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"trainerID": added.ID})
	rec := httptest.NewRecorder()

	RemoveTrainer(service)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, store.Load(context.Background()).Trainers, 0)
}

func TestUploadBannerAcceptsImagePart(t *testing.T) {
	service, store := newTestService(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="bannerImage"; filename="banner.png"`)
	h.Set("Content-Type", "image/png")
	pw, err := mw.CreatePart(h)
	require.Nil(t, err)
	pw.Write([]byte("banner-bytes"))
	require.Nil(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/v1/wizard/banner", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	UploadBanner(service)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotEmpty(t, store.Load(context.Background()).BannerImage)
}

func TestUploadBannerRejectsNonImage(t *testing.T) {
	service, store := newTestService(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="bannerImage"; filename="notes.txt"`)
	h.Set("Content-Type", "text/plain")
	pw, err := mw.CreatePart(h)
	require.Nil(t, err)
	pw.Write([]byte("hello"))
	require.Nil(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/v1/wizard/banner", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	UploadBanner(service)(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.Equal(t, "", store.Load(context.Background()).BannerImage)
}
