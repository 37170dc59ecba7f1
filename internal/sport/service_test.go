package sport

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/courtbook-backend/internal/pkg/storage"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return NewService(NewMemoryRepository(), files)
}

func TestCreateSport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sp, err := svc.Create(ctx, CreateRequest{
		Name:        "Badminton",
		Description: "Indoor wooden courts.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sp.ID)

	got, err := svc.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Badminton", got.Name)

	_, err = svc.Create(ctx, CreateRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSports(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Badminton", "Tennis", "Futsal"} {
		_, err := svc.Create(ctx, CreateRequest{Name: name})
		require.NoError(t, err)
	}

	sports, total, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, sports, 3)
	assert.Equal(t, "Badminton", sports[0].Name)
}

func testPNG(t *testing.T) io.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestSportImage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sp, err := svc.Create(ctx, CreateRequest{Name: "Tennis"})
	require.NoError(t, err)

	// No image yet.
	_, err = svc.GetImage(ctx, sp.ID)
	assert.ErrorIs(t, err, ErrNoImage)

	updated, err := svc.SetImage(ctx, sp.ID, testPNG(t))
	require.NoError(t, err)
	assert.Equal(t, "/v1/sports/"+sp.ID+"/image", updated.ImageURL)

	content, err := svc.GetImage(ctx, sp.ID)
	require.NoError(t, err)
	defer content.Close()

	// Stored content is a decodable JPEG thumbnail.
	_, format, err := image.Decode(content)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	// Garbage input is rejected before anything is stored.
	_, err = svc.SetImage(ctx, sp.ID, bytes.NewBufferString("not an image"))
	assert.Error(t, err)

	// Unknown sport.
	_, err = svc.SetImage(ctx, "missing", testPNG(t))
	assert.ErrorIs(t, err, ErrNotFound)
}
