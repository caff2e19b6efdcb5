package storage

import (
	"context"
	"errors"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestUploadFile(t *testing.T) {
	fake := &fakePutObject{}
	s := &awsS3{client: fake, bucket: "receipts", region: "ap-south-1"}

	key, err := s.UploadFile(context.Background(), "donations/abc.json", []byte(`{"id":"abc"}`), "application/json")
	require.NoError(t, err)

	assert.Equal(t, "donations/abc.json", key)
	assert.Equal(t, "receipts", *fake.input.Bucket)
	assert.Equal(t, "application/json", *fake.input.ContentType)
	assert.Equal(t, `{"id":"abc"}`, string(fake.body))
}

func TestUploadFileError(t *testing.T) {
	s := &awsS3{client: &fakePutObject{err: errors.New("denied")}, bucket: "receipts", region: "ap-south-1"}

	_, err := s.UploadFile(context.Background(), "donations/abc.json", nil, "application/json")
	assert.ErrorContains(t, err, "denied")
}

func TestGetPublicLinkKey(t *testing.T) {
	s := &awsS3{bucket: "receipts", region: "ap-south-1"}

	link := s.GetPublicLinkKey("donations/abc.json")
	assert.Equal(t, "https://receipts.s3.ap-south-1.amazonaws.com/donations/abc.json", link)
}
