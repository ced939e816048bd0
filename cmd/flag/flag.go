package flag

import (
	"github.com/spf13/cobra"
)

func ServiceAddr(cmd *cobra.Command, conf *string, defaultAddr string) {
	cmd.Flags().StringVarP(conf, "bind-address", "b", defaultAddr, "Bind address for the RPC service")
}

func MetricsAddr(cmd *cobra.Command, conf *string, defaultAddr string) {
	cmd.Flags().StringVarP(conf, "metrics-address", "m", defaultAddr, "Bind address for Prometheus metrics, empty to disable")
}

func ClusterConf(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "conf", "f", "cluster.yaml", "Cluster config file")
}
