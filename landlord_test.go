package rentora

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestUploadMedia_MultipartSingleFileField(t *testing.T) {
	var gotPath string
	var gotField, gotContent, gotFilename string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFilename = headers[0].Filename
			f, _ := headers[0].Open()
			data, _ := io.ReadAll(f)
			f.Close()
			gotContent = string(data)
		}
		json.NewEncoder(w).Encode(Image{ID: 11, URL: "/media/11.jpg"})
	}))

	img, err := client.Landlord.UploadMedia(context.Background(), 8, "facade.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/landlord/properties/8/media" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotField != "file" {
		t.Errorf("expected single form field \"file\", got %q", gotField)
	}
	if gotFilename != "facade.jpg" || gotContent != "jpeg-bytes" {
		t.Errorf("unexpected upload %q %q", gotFilename, gotContent)
	}
	if img.ID != 11 {
		t.Errorf("expected decoded image response, got %+v", img)
	}
}

func TestUpdatePricing_JSONBody(t *testing.T) {
	var gotBody string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		json.NewEncoder(w).Encode(Property{ID: 8, AnnualPrice: 18000})
	}))

	p, err := client.Landlord.UpdatePricing(context.Background(), 8, PricingUpdate{AnnualPrice: 18000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"annualPrice":18000}` {
		t.Errorf("unexpected body %q", gotBody)
	}
	if p.AnnualPrice != 18000 {
		t.Errorf("unexpected response %+v", p)
	}
}

func TestImagesUpload_Path(t *testing.T) {
	var gotPath string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Image{ID: 3})
	}))

	if _, err := client.Images.UploadPropertyImage(context.Background(), 77, "a.png", strings.NewReader("png")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/images/upload/property/77" {
		t.Errorf("unexpected path %q", gotPath)
	}
}
