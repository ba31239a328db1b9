package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/errors"
	"github.com/chris-lally/lally/internal/export"
)

type putCall struct {
	Key         string
	ContentType string
	Body        []byte
}

type fakePutter struct {
	calls   []putCall
	failKey string
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failKey != "" && *params.Key == f.failKey {
		return nil, fmt.Errorf("access denied")
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, putCall{
		Key:         *params.Key,
		ContentType: *params.ContentType,
		Body:        body,
	})
	return &s3.PutObjectOutput{}, nil
}

func buildResult(t *testing.T) *export.Result {
	t.Helper()
	result, err := export.New(catalog.Default()).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return result
}

func TestPublish_UploadsAllDocuments(t *testing.T) {
	result := buildResult(t)
	putter := &fakePutter{}
	pub := New(putter, Options{Bucket: "registry-bucket", Prefix: "registry"})

	keys, err := pub.Publish(context.Background(), result)
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	wantCount := len(result.Items) + 1
	if len(keys) != wantCount {
		t.Fatalf("uploaded %d objects, want %d", len(keys), wantCount)
	}
	if len(putter.calls) != wantCount {
		t.Fatalf("client saw %d puts, want %d", len(putter.calls), wantCount)
	}

	for i, doc := range result.Items {
		want := "registry/r/" + doc.Name + ".json"
		if keys[i] != want {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want)
		}
	}
}

func TestPublish_ManifestUploadedLast(t *testing.T) {
	result := buildResult(t)
	putter := &fakePutter{}
	pub := New(putter, Options{Bucket: "registry-bucket", Prefix: "registry"})

	if _, err := pub.Publish(context.Background(), result); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	last := putter.calls[len(putter.calls)-1]
	if last.Key != "registry/registry.json" {
		t.Errorf("last uploaded key = %q, want registry/registry.json", last.Key)
	}

	var manifest export.Manifest
	if err := json.Unmarshal(last.Body, &manifest); err != nil {
		t.Fatalf("manifest body is not valid JSON: %v", err)
	}
	if manifest.Name != export.RegistryName {
		t.Errorf("manifest name = %q, want %q", manifest.Name, export.RegistryName)
	}
}

func TestPublish_ContentType(t *testing.T) {
	result := buildResult(t)
	putter := &fakePutter{}
	pub := New(putter, Options{Bucket: "registry-bucket"})

	if _, err := pub.Publish(context.Background(), result); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	for _, call := range putter.calls {
		if call.ContentType != "application/json" {
			t.Errorf("object %s content-type = %q, want application/json", call.Key, call.ContentType)
		}
	}
}

func TestPublish_EmptyPrefix(t *testing.T) {
	result := buildResult(t)
	putter := &fakePutter{}
	pub := New(putter, Options{Bucket: "registry-bucket"})

	keys, err := pub.Publish(context.Background(), result)
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	for _, key := range keys {
		if strings.HasPrefix(key, "/") {
			t.Errorf("key %q has a leading slash", key)
		}
	}
	if last := keys[len(keys)-1]; last != "registry.json" {
		t.Errorf("manifest key = %q, want registry.json", last)
	}
}

func TestPublish_UploadFailure(t *testing.T) {
	result := buildResult(t)
	putter := &fakePutter{failKey: "registry/r/" + result.Items[0].Name + ".json"}
	pub := New(putter, Options{Bucket: "registry-bucket", Prefix: "registry"})

	_, err := pub.Publish(context.Background(), result)
	if err == nil {
		t.Fatal("expected upload failure error")
	}
	lerr, ok := err.(*errors.LallyError)
	if !ok || lerr.Code != "E132" {
		t.Errorf("error = %v, want code E132", err)
	}
}
