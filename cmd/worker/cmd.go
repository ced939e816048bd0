package worker

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shahchayan9/gRPC-Communication/cluster"
	"github.com/shahchayan9/gRPC-Communication/cmd/flag"
	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/ingest"
	"github.com/shahchayan9/gRPC-Communication/store"
	"github.com/shahchayan9/gRPC-Communication/worker"
)

var (
	conf       = worker.Config{}
	configFile string
	dataDir    string

	Cmd = &cobra.Command{
		Use:   "worker",
		Short: "Start a borough shard worker",
		Long: `Start one shard worker. The worker looks itself up in the cluster config
by process id, loads its borough shard file and serves queries over it.`,
		RunE: exec,
	}
)

func init() {
	flag.ClusterConf(Cmd, &configFile)
	flag.MetricsAddr(Cmd, &conf.MetricsAddr, "")
	Cmd.Flags().StringVarP(&conf.ProcessID, "process-id", "p", "", "Process id of this worker in the cluster config")
	Cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory holding the partitioned shard files")
	Cmd.Flags().StringVar(&conf.DataFile, "data-file", "", "Shard file to load, overrides the data-dir convention")
	_ = Cmd.MarkFlagRequired("process-id")
}

func exec(*cobra.Command, []string) error {
	common.ConfigureLogger()

	clusterConf, err := cluster.LoadConfig(configFile)
	if err != nil {
		return err
	}

	var self *cluster.Process
	for i, w := range clusterConf.Workers {
		if w.ID == conf.ProcessID {
			self = &clusterConf.Workers[i]
			break
		}
	}
	if self == nil {
		return errors.Errorf("process id %q not found in %s", conf.ProcessID, configFile)
	}

	conf.Borough = self.Borough
	conf.ServiceAddr = self.Address
	if conf.DataFile == "" {
		borough, _ := store.ParseBorough(self.Borough)
		conf.DataFile = filepath.Join(dataDir, ingest.ShardFileName(borough))
	}

	w, err := worker.New(conf)
	if err != nil {
		return err
	}

	common.WaitUntilSignal(w)
	return nil
}
