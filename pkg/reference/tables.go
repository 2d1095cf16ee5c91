package reference

import (
	"os"
	"path"

	"github.com/arenalabs/psxguard/config"
	log "github.com/sirupsen/logrus"
)

//TypePhysical and TypeCompany are the client type markers. Clients
//missing from the type tables default to physical persons.
const (
	TypePhysical = "P"
	TypeCompany  = "C"
)

type (
	//GatewayAttr describes how one PSX gateway formats its session logs
	GatewayAttr struct {
		Id         int64
		Delimiter  string
		DateFormat string
	}

	//Gateways maps a PSX code to its log format attributes
	Gateways map[string]GatewayAttr

	//Subscriber links a gateway-local subscriber id to a client
	Subscriber struct {
		IdSubscriber string
		UID          string
		IdOnPSX      string
	}

	//Subscribers is keyed by IdSubscriber
	Subscribers map[string]Subscriber

	//Client is a billing account. IdPlan names the client's service plan.
	Client struct {
		UID    string
		IdPlan string
		Name   string
	}

	//Clients is keyed by UID
	Clients map[string]Client

	//Plan is a service plan
	Plan struct {
		IdPlan  string
		Enabled bool
	}

	//Plans is keyed by IdPlan
	Plans map[string]Plan

	//ClientTypes maps a client UID to its type marker (P or C)
	ClientTypes map[string]string

	//Set bundles the materialized lookup tables used by the pipeline
	Set struct {
		Gateways    Gateways
		Subscribers Subscribers
		Clients     Clients
		Plans       Plans
		Types       ClientTypes
	}
)

//LoadAll materializes every reference table from the dataset directory.
//The gateway and client type tables degrade to empty maps when missing;
//the subscriber, client, and plan tables are required for enrichment
//and fail the load when unreadable.
func LoadAll(cfg *config.DatasetStaticCfg, logger *log.Logger) (*Set, error) {
	set := &Set{}

	gateways, err := LoadGateways(path.Join(cfg.Path, cfg.GatewayTable))
	if err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"table": cfg.GatewayTable,
		}).Warn("Could not load gateway attribute table, using parsing defaults for all files")
		gateways = Gateways{}
	}
	set.Gateways = gateways

	set.Subscribers, err = LoadSubscribers(path.Join(cfg.Path, cfg.SubscriberTable))
	if err != nil {
		return nil, err
	}

	set.Clients, err = LoadClients(path.Join(cfg.Path, cfg.ClientTable))
	if err != nil {
		return nil, err
	}

	set.Plans, err = LoadPlans(path.Join(cfg.Path, cfg.PlanTable))
	if err != nil {
		return nil, err
	}

	physical := path.Join(cfg.Path, cfg.PhysicalTable)
	if _, statErr := os.Stat(physical); os.IsNotExist(statErr) {
		// some exports ship this table under a misspelled name
		alt := path.Join(cfg.Path, "phisical.csv")
		if _, statErr := os.Stat(alt); statErr == nil {
			physical = alt
		}
	}

	set.Types = LoadClientTypes(
		physical,
		path.Join(cfg.Path, cfg.CompanyTable),
		logger,
	)

	return set, nil
}
