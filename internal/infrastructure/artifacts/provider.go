package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gocache "github.com/patrickmn/go-cache"

	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// fileSlugs maps assessment types onto their artifact file stems. A type's
// classifier lives in "<slug>_model.json" and its optional scaler in
// "<slug>_scaler.json".
var fileSlugs = map[constants.AssessmentType]string{
	constants.AssessmentHeart:      "heart",
	constants.AssessmentDiabetes:   "diabetes",
	constants.AssessmentParkinsons: "parkinsons",
}

var _ service.ArtifactProvider = (*fileProvider)(nil)

// fileProvider loads artifacts from a directory and caches parsed models so
// repeated scoring calls avoid re-reading the files.
type fileProvider struct {
	dir   string
	cache *gocache.Cache
	log   logger.Logger
}

// NewFileProvider creates a provider over the configured artifact directory.
func NewFileProvider(cfg *config.ArtifactsConfig, log logger.Logger) service.ArtifactProvider {
	ttl := cfg.CacheTTLDuration()
	if ttl <= 0 {
		ttl = constants.DefaultArtifactCacheTTL
	}
	return &fileProvider{
		dir:   cfg.Dir,
		cache: gocache.New(ttl, 2*ttl),
		log:   log,
	}
}

// Classifier loads the frozen classifier for the type. A missing model file
// is an error: the type cannot be scored without it.
func (p *fileProvider) Classifier(ctx context.Context, typ constants.AssessmentType) (service.Classifier, error) {
	slug, ok := fileSlugs[typ]
	if !ok {
		return nil, errors.ErrScoring(fmt.Sprintf("no artifacts for assessment type %q", typ))
	}
	key := slug + "_model"
	if cached, found := p.cache.Get(key); found {
		return cached.(service.Classifier), nil
	}

	var model logisticRegression
	if err := p.readJSON(key+".json", &model); err != nil {
		return nil, err
	}
	if len(model.Coefficients) == 0 {
		return nil, errors.ErrScoring(fmt.Sprintf("artifact %s carries no coefficients", key))
	}
	p.cache.SetDefault(key, service.Classifier(&model))
	p.log.Info(ctx, "classifier artifact loaded", logger.Fields{
		"type":     string(typ),
		"features": len(model.Coefficients),
	})
	return &model, nil
}

// Scaler loads the frozen scaler for the type. A missing scaler file is not
// an error; scoring proceeds unscaled with a reduced-accuracy warning.
func (p *fileProvider) Scaler(ctx context.Context, typ constants.AssessmentType) (service.Scaler, error) {
	slug, ok := fileSlugs[typ]
	if !ok {
		return nil, errors.ErrScoring(fmt.Sprintf("no artifacts for assessment type %q", typ))
	}
	key := slug + "_scaler"
	if cached, found := p.cache.Get(key); found {
		if cached == nil {
			return nil, nil
		}
		return cached.(service.Scaler), nil
	}

	var scaler standardScaler
	if err := p.readJSON(key+".json", &scaler); err != nil {
		if os.IsNotExist(err) {
			p.cache.SetDefault(key, nil)
			return nil, nil
		}
		return nil, err
	}
	p.cache.SetDefault(key, service.Scaler(&scaler))
	return &scaler, nil
}

func (p *fileProvider) readJSON(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.ErrScoring(fmt.Sprintf("artifact %s is not valid JSON", name)).WithCause(err)
	}
	return nil
}
