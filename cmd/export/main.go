// Command export mirrors live API data into the static JSON snapshots
// public pages are served from.
package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/travelingtastebuds/ttb-api/client"
)

func main() {
	var (
		apiURL    = flag.String("api", "http://localhost:3001", "base URL of the content API")
		outDir    = flag.String("out", "snapshots", "directory to write snapshot files into")
		tokenFile = flag.String("token-file", ".ttb-token", "path of the stored admin token")
		timeout   = flag.Duration("timeout", time.Minute, "overall export deadline")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*apiURL, client.NewFileTokenStore(*tokenFile))
	if err := c.ExportAll(ctx, *outDir); err != nil {
		log.WithError(err).Fatal("export incomplete")
	}

	log.WithField("prefix", "export").WithField("dir", *outDir).Info("export finished")
}
