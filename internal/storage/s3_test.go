package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	pages   [][]string
	objects map[string]string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	page := 0
	if in.ContinuationToken != nil {
		page = len(*in.ContinuationToken)
	}

	out := &s3.ListObjectsV2Output{}
	for _, key := range f.pages[page] {
		if strings.HasPrefix(key, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
		}
	}
	if page+1 < len(f.pages) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(strings.Repeat("x", page+1))
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3StorageListFollowsPages(t *testing.T) {
	store := &S3Storage{
		client: &fakeS3{pages: [][]string{
			{"analysis/2026-03-01.json", "other/readme.txt"},
			{"analysis/2026-03-02.yaml"},
		}},
		bucket: "exports",
	}

	keys, err := store.List(context.Background(), "analysis/")
	require.NoError(t, err)
	assert.Equal(t, []string{"analysis/2026-03-01.json", "analysis/2026-03-02.yaml"}, keys)
}

func TestS3StorageGet(t *testing.T) {
	store := &S3Storage{
		client: &fakeS3{objects: map[string]string{"analysis/a.json": `[]`}},
		bucket: "exports",
	}

	data, err := store.Get(context.Background(), "analysis/a.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = store.Get(context.Background(), "analysis/missing.json")
	assert.Error(t, err)
}
