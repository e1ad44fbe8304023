package assemble

import (
	"encoding/json"
	"event-composer-backend/codec"
	"event-composer-backend/model"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Submission is the wire form of a finished Draft: plain fields plus the
// decoded image parts. Disposable ids and inline images never appear in it.
type Submission struct {
	Fields        map[string]string
	Banner        FilePart
	TrainerImages []FilePart
}

type FilePart struct {
	FileName string
	MIME     string
	Data     []byte
}

// wireTrainer is the shape the events backend expects: no disposable id, no
// inline image (the image travels as a file part instead).
type wireTrainer struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	LinkedIn    string `json:"linkedin"`
	Twitter     string `json:"twitter"`
}

type wireTicket struct {
	Name         string `json:"name"`
	Price        string `json:"price"`
	Type         string `json:"type"`
	Transferable bool   `json:"transferable"`
}

// Build converts the accumulated Draft into a Submission. The caller is
// expected to have run the preview-step presence checks already; Build only
// refuses drafts it cannot physically serialize.
func Build(d *model.Draft) (*Submission, error) {
	if d.Details == nil {
		return nil, fmt.Errorf("build: draft has no event details")
	}
	if d.BannerImage == "" {
		return nil, fmt.Errorf("build: draft has no banner image")
	}

	bannerMIME, bannerData, err := codec.DecodeDataURI(d.BannerImage)
	if err != nil {
		return nil, fmt.Errorf("build: error decoding banner image: %w", err)
	}

	s := &Submission{
		Fields: map[string]string{
			"eventTitle":       d.Details.Title,
			"eventDescription": d.Details.Description,
			"eventCategory":    d.Details.Category,
			"eventType":        d.EventType,
			"startDate":        d.Details.StartDate,
			"endDate":          d.Details.EndDate,
			"startTime":        d.Details.StartTime,
			"endTime":          d.Details.EndTime,
			"eventLocation":    d.Details.Location,
		},
		Banner: FilePart{
			FileName: "banner" + extension(bannerMIME),
			MIME:     bannerMIME,
			Data:     bannerData,
		},
	}

	trainers := make([]wireTrainer, 0, len(d.Trainers))
	for i, t := range d.Trainers {
		trainers = append(trainers, wireTrainer{
			Name:        t.Name,
			Designation: t.Designation,
			Description: t.Description,
			Facebook:    t.Facebook,
			Instagram:   t.Instagram,
			LinkedIn:    t.LinkedIn,
			Twitter:     t.Twitter,
		})

		if t.Image == "" {
			continue
		}
		mimeType, data, err := codec.DecodeDataURI(t.Image)
		if err != nil {
			return nil, fmt.Errorf("build: error decoding image for trainer %d: %w", i, err)
		}
		s.TrainerImages = append(s.TrainerImages, FilePart{
			FileName: fmt.Sprintf("trainer-%d%s", i, extension(mimeType)),
			MIME:     mimeType,
			Data:     data,
		})
	}

	trainersJSON, err := json.Marshal(trainers)
	if err != nil {
		return nil, fmt.Errorf("build: error marshalling trainers: %w", err)
	}
	s.Fields["trainers"] = string(trainersJSON)

	tickets := make([]wireTicket, 0, len(d.Tickets))
	for _, t := range d.Tickets {
		tickets = append(tickets, wireTicket{
			Name:         t.Name,
			Price:        t.Price,
			Type:         t.Type,
			Transferable: t.Transferable,
		})
	}
	ticketsJSON, err := json.Marshal(tickets)
	if err != nil {
		return nil, fmt.Errorf("build: error marshalling tickets: %w", err)
	}
	s.Fields["tickets"] = string(ticketsJSON)

	settings := d.EventSettings
	if settings == nil {
		settings = &model.EventSettings{}
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("build: error marshalling event settings: %w", err)
	}
	s.Fields["eventSettings"] = string(settingsJSON)

	return s, nil
}

// Encode writes the submission as a multipart body and returns its content
// type.
func (s *Submission) Encode(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	for field, value := range s.Fields {
		if err := mw.WriteField(field, value); err != nil {
			return "", fmt.Errorf("encode: error writing field %s: %w", field, err)
		}
	}

	if err := writeFilePart(mw, "bannerImage", s.Banner); err != nil {
		return "", fmt.Errorf("encode: error writing banner: %w", err)
	}

	for _, part := range s.TrainerImages {
		if err := writeFilePart(mw, "trainerImages", part); err != nil {
			return "", fmt.Errorf("encode: error writing trainer image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("encode: error closing multipart body: %w", err)
	}

	return mw.FormDataContentType(), nil
}

func writeFilePart(mw *multipart.Writer, field string, part FilePart) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, part.FileName))
	h.Set("Content-Type", part.MIME)

	pw, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	_, err = pw.Write(part.Data)
	return err
}

func extension(mimeType string) string {
	i := strings.Index(mimeType, "/")
	if i < 0 || i == len(mimeType)-1 {
		return ""
	}
	return "." + mimeType[i+1:]
}
