package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"github.com/GeraldTgit/magingwais/models"
)

const (
	imageCacheDir = "cache/images"
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800

	imageFetchTimeout = 15 * time.Second
)

// EnsureImageCacheDir ensures the image cache directory exists
func EnsureImageCacheDir() error {
	if err := os.MkdirAll(imageCacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create image cache directory: %w", err)
	}
	return nil
}

// itemImageCachePath returns the cache file path for an item image at a size
func itemImageCachePath(itemID int64, size string) string {
	filename := fmt.Sprintf("item_%d_%s.jpg", itemID, size)
	return filepath.Join(imageCacheDir, filename)
}

// FetchOptimizedItemImage returns the JPEG bytes for an item's product
// image at the requested size ("thumb" or "medium"), downloading and
// optimizing it on the first request and serving from the disk cache
// afterwards.
func FetchOptimizedItemImage(ctx context.Context, itemID int64, imageURL, size string) ([]byte, error) {
	cachePath := itemImageCachePath(itemID, size)
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	client := &http.Client{Timeout: imageFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("❌ FetchOptimizedItemImage: Download failed: %v", err)
		return nil, fmt.Errorf("failed to download image: %w: %v", models.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host returned status %d: %w", resp.StatusCode, models.ErrStoreUnavailable)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w: %v", models.ErrStoreUnavailable, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err == nil {
		if err := os.WriteFile(cachePath, optimized, 0644); err != nil {
			log.Printf("⚠️ FetchOptimizedItemImage: Could not cache image: %v", err)
		} else {
			log.Printf("✓ Image cached: %s", cachePath)
		}
	}

	return optimized, nil
}

// OptimizeImage converts an image to JPEG and resizes it to the given
// size bucket ("thumb" or "medium"), keeping the aspect ratio.
// JPEG rather than WebP keeps the build CGO-free.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}

		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	optimized := buf.Bytes()
	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, len(optimized))
	return optimized, nil
}
