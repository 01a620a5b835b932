package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Service and profile photos are normalized to webp before upload so the
// catalog serves one format at a predictable size.

const (
	maxWidth    = 1280
	webpQuality = 85
)

type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageStore returns nil when no bucket is configured; callers treat a
// nil store as "uploads disabled".
func NewImageStore(bucket, region, accessKey, secretKey, baseURL string) *ImageStore {
	if bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})

	return &ImageStore{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload decodes a jpeg/png, downscales it to at most maxWidth, re-encodes
// as webp and stores it under a random key. Returns the public URL.
func (s *ImageStore) Upload(ctx context.Context, r io.Reader, prefix string) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        &buf,
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxWidth {
		return src
	}

	h := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
