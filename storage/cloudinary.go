package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/config"
)

// ImageUploader stores image bytes and returns a public URL.
type ImageUploader interface {
	Upload(data []byte, publicID string) (string, error)
}

// Cloudinary uploads through the signed REST endpoint.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Client    *http.Client
}

func NewCloudinary(cfg config.CloudinaryConfig) *Cloudinary {
	return &Cloudinary{
		CloudName: cfg.CloudName,
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
		Folder:    cfg.Folder,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Cloudinary) Upload(data []byte, publicID string) (string, error) {
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		return "", errors.New("cloudinary credentials are not configured")
	}
	if len(data) == 0 {
		return "", errors.New("empty image payload")
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + c.CloudName + "/image/upload"

	finalPublicID := publicID
	if c.Folder != "" {
		finalPublicID = c.Folder + "/" + publicID
	}

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", c.APIKey)
	form.Add("public_id", finalPublicID)

	// Cloudinary signs public_id + timestamp with SHA1 over the api secret.
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Add("timestamp", timestamp)
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, c.APISecret)
	form.Add("signature", fmt.Sprintf("%x", sha1.Sum([]byte(signatureString))))

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed with status %d", res.StatusCode)
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", err
	}
	if cloudRes.Error.Message != "" {
		return "", errors.New("cloudinary error: " + cloudRes.Error.Message)
	}

	if cloudRes.SecureURL != "" {
		return cloudRes.SecureURL, nil
	}
	if cloudRes.URL != "" {
		return cloudRes.URL, nil
	}
	return "", errors.New("cloudinary response contained no url")
}
