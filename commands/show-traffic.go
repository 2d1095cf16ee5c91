package commands

import (
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/arenalabs/psxguard/parser"
	"github.com/arenalabs/psxguard/pkg/data"
	"github.com/arenalabs/psxguard/pkg/hourly"
	"github.com/arenalabs/psxguard/pkg/reference"
	"github.com/arenalabs/psxguard/resources"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:  "show-traffic",
		Usage: "Plot a subscriber's hourly traffic to the terminal",
		Flags: []cli.Flag{
			configFlag,
			datasetFlag,
			workersFlag,
			cli.StringFlag{
				Name:  "subscriber, s",
				Usage: "Plot traffic for `SUBSCRIBER_ID`",
				Value: "",
			},
		},
		Action: showTraffic,
	}

	bootstrapCommands(command)
}

func showTraffic(c *cli.Context) error {
	if c.String("subscriber") == "" {
		return cli.NewExitError("Specify a subscriber with -s", -1)
	}

	res := resources.InitResources(c.String("config"))
	applyDatasetOverrides(res, c)

	if res.Config.S.Dataset.Path == "" {
		return cli.NewExitError("Specify a dataset directory with -d or in the config file", -1)
	}
	if err := validateDatasetDir(res.Config.S.Dataset.Path); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	records, err := parser.NewFSImporter(res, loadGatewaysOrDefaults(res)).Run()
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	buckets := hourly.Aggregate(records)
	hours, traffic, upTx, downTx := subscriberSeries(buckets, c.String("subscriber"))
	if len(hours) == 0 {
		return cli.NewExitError("No traffic found for subscriber "+c.String("subscriber"), -1)
	}

	fmt.Printf("\nSubscriber %s: %d hourly buckets from %s to %s\n\n",
		c.String("subscriber"), len(hours),
		hours[0].Format("2006-01-02 15:04"), hours[len(hours)-1].Format("2006-01-02 15:04"))

	fmt.Println(asciigraph.Plot(traffic,
		asciigraph.Height(10), asciigraph.Caption("Total traffic (bytes) per hour")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(upTx,
		asciigraph.Height(10), asciigraph.Caption("Upload (bytes) per hour")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(downTx,
		asciigraph.Height(10), asciigraph.Caption("Download (bytes) per hour")))
	return nil
}

// loadGatewaysOrDefaults reads the gateway attribute table, falling
// back to an empty table when it cannot be read. The fallback is
// logged: every file then parses with the configured defaults.
func loadGatewaysOrDefaults(res *resources.Resources) reference.Gateways {
	tablePath := path.Join(res.Config.S.Dataset.Path, res.Config.S.Dataset.GatewayTable)
	gateways, err := reference.LoadGateways(tablePath)
	if err != nil {
		res.Log.WithFields(log.Fields{
			"error": err.Error(),
			"table": tablePath,
		}).Warn("Could not load gateway attribute table, using parsing defaults for all files")
		return reference.Gateways{}
	}
	return gateways
}

// subscriberSeries sums one subscriber's buckets per hour across
// sessions and gateways, ordered chronologically. Null-hour buckets
// cannot be placed on a timeline and are left out.
func subscriberSeries(buckets []data.HourBucket, subscriber string) ([]time.Time, []float64, []float64, []float64) {
	totals := make(map[int64]*data.HourBucket)
	for i := range buckets {
		bucket := buckets[i]
		if bucket.IdSubscriber != subscriber || !bucket.HourValid {
			continue
		}
		sum, ok := totals[bucket.Hour]
		if !ok {
			sum = &data.HourBucket{BucketKey: data.BucketKey{Hour: bucket.Hour, HourValid: true}}
			totals[bucket.Hour] = sum
		}
		sum.UpTx += bucket.UpTx
		sum.DownTx += bucket.DownTx
		sum.Traffic += bucket.Traffic
	}

	hourKeys := make([]int64, 0, len(totals))
	for hour := range totals {
		hourKeys = append(hourKeys, hour)
	}
	sort.Slice(hourKeys, func(i, j int) bool { return hourKeys[i] < hourKeys[j] })

	hours := make([]time.Time, 0, len(hourKeys))
	traffic := make([]float64, 0, len(hourKeys))
	upTx := make([]float64, 0, len(hourKeys))
	downTx := make([]float64, 0, len(hourKeys))
	for _, hour := range hourKeys {
		sum := totals[hour]
		hours = append(hours, time.Unix(hour, 0).UTC())
		traffic = append(traffic, sum.Traffic)
		upTx = append(upTx, sum.UpTx)
		downTx = append(downTx, sum.DownTx)
	}
	return hours, traffic, upTx, downTx
}
