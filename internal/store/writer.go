package store

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"autobloggerx/internal/models"
)

// templateVariants is the number of component variants per layout slot.
const templateVariants = 5

// Rand is the randomness the Writer draws template variants and feature
// toggles from.
type Rand interface {
	IntN(n int) int
}

// Writer turns generated content into a website row and inserts it.
type Writer struct {
	store WebsiteStore
	rand  Rand
}

// NewWriter creates a Writer over store. A nil r falls back to a PCG
// source seeded from the clock.
func NewWriter(store WebsiteStore, r Rand) *Writer {
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Writer{store: store, rand: r}
}

// Build assembles the row for req from the generated content, picking
// random template variants and feature toggles.
func (w *Writer) Build(req models.SiteRequest, gen *models.GeneratedContent) *models.Website {
	return &models.Website{
		HostName:    req.HostName,
		WebsiteName: req.WebsiteName,
		Topic:       req.Topic,
		AboutUs:     gen.AboutUs,
		ContactUs:   gen.ContactUs,
		HeroContent: gen.Hero,
		Templates: models.Templates{
			Header:    w.template(),
			Footer:    w.template(),
			BlogPost:  w.template(),
			Page:      w.template(),
			FrontPage: w.template(),
		},
		DesignTheme:     gen.Design,
		ContainerWidth:  models.DefaultContainerWidth,
		BorderRadius:    models.DefaultBorderRadius,
		MetaDescription: gen.MetaDescription,
		Features: models.Features{
			Breadcrumbs:        w.coin(),
			RelatedPosts:       w.coin(),
			SearchBar:          w.coin(),
			ShareButtons:       w.coin(),
			TableOfContents:    w.coin(),
			AuthorBox:          w.coin(),
			TagsDisplay:        w.coin(),
			ReadingTime:        w.coin(),
			PostNavigation:     w.coin(),
			ReadingProgressBar: w.coin(),
		},
	}
}

// Save builds the row, inserts it once and returns the id the store
// assigned to it.
func (w *Writer) Save(ctx context.Context, req models.SiteRequest, gen *models.GeneratedContent) (*models.Website, string, error) {
	site := w.Build(req, gen)

	rows, err := w.store.Insert(ctx, site)
	if err != nil {
		return site, "", err
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return site, "", ErrInsertFailed
	}

	slog.Info("website saved", "id", rows[0].ID, "host_name", site.HostName)
	return site, rows[0].ID, nil
}

func (w *Writer) template() int {
	return 1 + w.rand.IntN(templateVariants)
}

func (w *Writer) coin() bool {
	return w.rand.IntN(2) == 1
}
