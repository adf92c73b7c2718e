// Package catalog maintains the reference documents that are curated by
// hand rather than derived from timing data: drivers, teams and the
// editorial fields of circuits.
package catalog

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gridmetrics/ingest/internal/models"
	"github.com/gridmetrics/ingest/internal/store"
)

// Store is the document-store surface the catalog needs.
type Store interface {
	UpsertByID(ctx context.Context, collection, id string, fields any) (store.UpsertResult, error)
	UpdateByID(ctx context.Context, collection, id string, fields any) (store.UpsertResult, error)
	DeleteEntity(ctx context.Context, collection, entityID string) (int64, error)
}

// Translator converts text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Catalog writes curated documents. The translator is optional; without
// one, text fields are stored untranslated.
type Catalog struct {
	store      Store
	translator Translator
	targetLang string
	log        *slog.Logger
}

// New creates a Catalog. translator may be nil.
func New(s Store, translator Translator, targetLanguage string, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{store: s, translator: translator, targetLang: targetLanguage, log: log}
}

// SaveDriver upserts a driver document under driver_<id>. When
// translateBio is set the biography is translated first; a translation
// failure degrades to the original text.
func (c *Catalog) SaveDriver(ctx context.Context, driverID string, driver models.Driver, translateBio bool) (store.UpsertResult, error) {
	if translateBio && driver.Biography != "" {
		driver.Biography = c.translate(ctx, driver.Biography)
	}

	res, err := c.store.UpsertByID(ctx, store.CollectionDrivers, models.DriverID(driverID), driver)
	if err != nil {
		return store.UpsertResult{}, err
	}
	c.log.Info("driver saved", "driver", driverID, "matched", res.Matched, "modified", res.Modified)
	return res, nil
}

// SaveTeam upserts a team document under team_<id>.
func (c *Catalog) SaveTeam(ctx context.Context, teamID string, team models.Team) (store.UpsertResult, error) {
	res, err := c.store.UpsertByID(ctx, store.CollectionTeams, models.TeamID(teamID), team)
	if err != nil {
		return store.UpsertResult{}, err
	}
	c.log.Info("team saved", "team", teamID, "matched", res.Matched, "modified", res.Modified)
	return res, nil
}

// CircuitPatch names the circuit fields that can be updated in place.
// Nil fields are left untouched.
type CircuitPatch struct {
	FirstGP      *string
	NumberOfLaps *int
	Length       *float64
	RaceDistance *float64
	LapRecord    *models.LapRecord
	Questions    map[string]string
}

// UpdateCircuit merges the non-nil patch fields into an existing circuit
// document. Questions are translated one by one, each falling back to
// its original text on failure. An empty patch is a no-op.
func (c *Catalog) UpdateCircuit(ctx context.Context, circuitID string, patch CircuitPatch) (store.UpsertResult, error) {
	fields := bson.M{}
	if patch.FirstGP != nil {
		fields["first_gp"] = *patch.FirstGP
	}
	if patch.NumberOfLaps != nil {
		fields["number_of_laps"] = *patch.NumberOfLaps
	}
	if patch.Length != nil {
		fields["length"] = *patch.Length
	}
	if patch.RaceDistance != nil {
		fields["race_distance"] = *patch.RaceDistance
	}
	if patch.LapRecord != nil {
		fields["lap_record"] = *patch.LapRecord
	}
	if patch.Questions != nil {
		translated := make(map[string]string, len(patch.Questions))
		for key, text := range patch.Questions {
			translated[key] = c.translate(ctx, text)
		}
		fields["questions"] = translated
	}

	if len(fields) == 0 {
		c.log.Info("no circuit fields to update", "circuit", circuitID)
		return store.UpsertResult{}, nil
	}

	res, err := c.store.UpdateByID(ctx, store.CollectionCircuit, models.CircuitID(circuitID), fields)
	if err != nil {
		return store.UpsertResult{}, err
	}
	c.log.Info("circuit updated", "circuit", circuitID, "matched", res.Matched, "modified", res.Modified)
	return res, nil
}

// Delete removes a circuit or race document by its bare entity id and
// returns the deleted count; deleting an absent document returns zero.
func (c *Catalog) Delete(ctx context.Context, collection, entityID string) (int64, error) {
	deleted, err := c.store.DeleteEntity(ctx, collection, entityID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		c.log.Info("nothing to delete", "collection", collection, "entity", entityID)
	} else {
		c.log.Info("document deleted", "collection", collection, "entity", entityID)
	}
	return deleted, nil
}

// translate returns the translated text, or the original when no
// translator is configured or the call fails.
func (c *Catalog) translate(ctx context.Context, text string) string {
	if c.translator == nil {
		return text
	}
	translated, err := c.translator.Translate(ctx, text, c.targetLang)
	if err != nil {
		c.log.Warn("translation failed, keeping original text", "error", err)
		return text
	}
	return translated
}
