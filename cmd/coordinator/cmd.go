package coordinator

import (
	"github.com/spf13/cobra"

	"github.com/shahchayan9/gRPC-Communication/cluster"
	"github.com/shahchayan9/gRPC-Communication/cmd/flag"
	"github.com/shahchayan9/gRPC-Communication/common"
	"github.com/shahchayan9/gRPC-Communication/coordinator"
)

var (
	conf       = coordinator.Config{}
	configFile string

	Cmd = &cobra.Command{
		Use:   "coordinator",
		Short: "Start the coordinator",
		Long: `Start the coordinator process. It owns the borough routing table and
fans queries out to the shard workers listed in the cluster config.`,
		RunE: exec,
	}
)

func init() {
	flag.ServiceAddr(Cmd, &conf.ServiceAddr, "0.0.0.0:6001")
	flag.MetricsAddr(Cmd, &conf.MetricsAddr, "0.0.0.0:8080")
	flag.ClusterConf(Cmd, &configFile)
	Cmd.Flags().DurationVar(&conf.RequestTimeout, "request-timeout", coordinator.DefaultRequestTimeout, "Per-worker dispatch timeout")
	Cmd.Flags().DurationVar(&conf.CacheTTL, "cache-ttl", coordinator.DefaultCacheTTL, "Query cache TTL, 0 to disable")
	Cmd.Flags().IntVar(&conf.StreamPageSize, "stream-page-size", coordinator.DefaultStreamPageSize, "Result entries per stream chunk")
}

func exec(*cobra.Command, []string) error {
	common.ConfigureLogger()

	clusterConf, err := cluster.LoadConfig(configFile)
	if err != nil {
		return err
	}
	conf.Cluster = clusterConf
	conf.ProcessID = clusterConf.Coordinator.ID

	c, err := coordinator.New(conf)
	if err != nil {
		return err
	}

	common.WaitUntilSignal(c)
	return nil
}
