package routes

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/kataras/iris/v12"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/storage"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

const (
	maxSingleUploadSize = 5 << 20
	maxBulkImages       = 10
	maxBulkUploadSize   = maxSingleUploadSize * maxBulkImages

	// Cap on concurrent object-store uploads within one bulk request, so a
	// large batch cannot fan out unbounded.
	bulkUploadWorkers = 4
)

type UploadHandler struct {
	Uploader storage.ImageUploader
	Dev      bool
}

func (h *UploadHandler) Image(ctx iris.Context) {
	file, header, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			utils.Error(ctx, "No images selected")
			return
		}
		utils.Error(ctx, err.Error())
		return
	}
	defer file.Close()

	if !allowedImageType(header) {
		utils.Error(ctx, "Unsupported File Format")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.devLog("image upload read error:", err)
		utils.InternalServerError(ctx)
		return
	}

	url, err := h.Uploader.Upload(data, utils.GenerateShortToken(8))
	if err != nil {
		h.devLog("image upload error:", err)
		utils.Error(ctx, "Failed to upload image")
		return
	}

	utils.Success(ctx, "Image upload successfully", url)
}

// BulkImage uploads up to ten images. Unsupported types and failed uploads
// are dropped from the result instead of failing the batch.
func (h *UploadHandler) BulkImage(ctx iris.Context) {
	if err := ctx.Request().ParseMultipartForm(maxBulkUploadSize); err != nil {
		utils.Error(ctx, err.Error())
		return
	}

	form := ctx.Request().MultipartForm
	if form == nil || len(form.File["images"]) == 0 {
		utils.Error(ctx, "No images selected")
		return
	}
	files := form.File["images"]
	if len(files) > maxBulkImages {
		utils.Error(ctx, "Maximum 10 images allowed")
		return
	}

	urls := make([]string, len(files))
	sem := make(chan struct{}, bulkUploadWorkers)
	var wg sync.WaitGroup
	for i, fileHeader := range files {
		if !allowedImageType(fileHeader) {
			continue
		}
		wg.Add(1)
		go func(i int, fileHeader *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, err := h.uploadOne(fileHeader)
			if err != nil {
				h.devLog("bulk image upload error:", err)
				return
			}
			urls[i] = url
		}(i, fileHeader)
	}
	wg.Wait()

	uploaded := make([]string, 0, len(urls))
	for _, url := range urls {
		if url != "" {
			uploaded = append(uploaded, url)
		}
	}

	utils.Success(ctx, "Image upload successfully", uploaded)
}

func (h *UploadHandler) uploadOne(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return h.Uploader.Upload(data, utils.GenerateShortToken(8))
}

func allowedImageType(header *multipart.FileHeader) bool {
	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/jpg":
		return true
	}
	return false
}

func (h *UploadHandler) devLog(v ...interface{}) {
	if h.Dev {
		devLog(v...)
	}
}
