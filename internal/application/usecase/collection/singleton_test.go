package collection

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/memstore"
	"github.com/khoahotran/portfolio-api/internal/domain/settings"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func newSettingsService() *SingletonService[*settings.Settings] {
	return NewSingletonService[*settings.Settings](settings.Resource, memstore.NewPortfolio().Settings)
}

func TestSingleton_GetBeforeReplaceIsAbsent(t *testing.T) {
	_, found, err := newSettingsService().Get(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSingleton_ReplaceSupersedes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	svc := newSettingsService().WithClock(func() time.Time { return now })

	x, err := svc.Replace(ctx, &settings.Settings{SiteTitle: "X", Theme: settings.ThemeLight})
	require.NoError(t, err)
	assert.Equal(t, now, x.CreatedAt)

	y, err := svc.Replace(ctx, &settings.Settings{SiteTitle: "Y"})
	require.NoError(t, err)
	assert.NotEqual(t, x.ID, y.ID)

	got, found, err := svc.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Y", got.SiteTitle)
	assert.Equal(t, settings.ThemeSystem, got.Theme)
	assert.Equal(t, y.ID, got.ID)
}

func TestSingleton_InvalidThemeKeepsCurrentRow(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService()
	_, err := svc.Replace(ctx, &settings.Settings{SiteTitle: "X", Theme: settings.ThemeDark})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, &settings.Settings{SiteTitle: "Y", Theme: "neon"})
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))

	got, found, err := svc.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "X", got.SiteTitle)
}

func TestSingleton_ConcurrentGetNeverSeesAbsence(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService()
	_, err := svc.Replace(ctx, &settings.Settings{SiteTitle: "X"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	misses := make(chan string, 1)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, found, err := svc.Get(ctx)
				if err != nil || !found || (got.SiteTitle != "X" && got.SiteTitle != "Y") {
					select {
					case misses <- "reader saw a missing or foreign row":
					default:
					}
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		title := "X"
		if i%2 == 0 {
			title = "Y"
		}
		_, err := svc.Replace(ctx, &settings.Settings{SiteTitle: title})
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	select {
	case msg := <-misses:
		t.Fatal(msg)
	default:
	}
}
