package resources

import (
	"testing"

	"github.com/arenalabs/psxguard/config"
	"github.com/google/uuid"
)

//InitTestingResources creates a default testing resource bundle with
//the hard coded testing config and a discard logger.
func InitTestingResources(t *testing.T) *Resources {
	conf, err := config.LoadTestingConfig()
	if err != nil {
		t.Fatal(err)
	}

	logger := initLogger(&conf.S.Log)

	r := &Resources{
		Config: conf,
		Log:    logger,
		RunID:  uuid.New().String(),
	}
	return r
}
