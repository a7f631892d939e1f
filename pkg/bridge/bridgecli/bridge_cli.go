package bridgecli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/sstallion/go-hid"

	"github.com/lodriguez/SpaceBridge/pkg/bridge"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	cmd := NewRootCmd(filepath.Join(dir, "spacebridge"))
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

type bridgeProvider func() *bridge.Bridge

func NewRootCmd(configDir string) *cobra.Command {
	configPath := filepath.Join(configDir, "config.yaml")
	bridgeCmd := &cobra.Command{
		Use:   "spacebridge",
		Short: "SpaceControl virtual input bridge",
		Long:  `spacebridge connects to the SpaceControl daemon and exposes a SpaceController as virtual input devices: a spacenavd-compatible six-axis pointer and an optional gamepad.`,
	}
	var b *bridge.Bridge
	bridgeProvider := func() *bridge.Bridge {
		return b
	}
	bridgeCmd.PersistentFlags().StringVar(&configPath, "config", configPath, "bridge config file")
	bridgeCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		b, err = bridge.New(configPath)
		return err
	}
	bridgeCmd.AddCommand(NewRun(bridgeProvider))
	bridgeCmd.AddCommand(NewListDevices(bridgeProvider))
	bridgeCmd.AddCommand(NewListHID())
	bridgeCmd.AddCommand(NewDecodeEvent())
	return bridgeCmd
}

func NewRun(bridge bridgeProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "run [daemon-profile]",
		Short: "Run the bridge",
		Long:  `Polls the SpaceControl daemon and forwards motion and button events to the enabled virtual devices. The optional argument is a SpaceControl profile file loaded by the daemon itself.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			daemonConfig := ""
			if len(args) == 1 {
				daemonConfig = args[0]
			}
			return bridge().Run(cmd.Context(), daemonConfig)
		},
	}
}

func NewListDevices(bridge bridgeProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list-devices",
		Short: "List SpaceControl devices",
		Long:  `Connect to the SpaceControl daemon and report how many devices it manages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := bridge().ListDevices()
			if err != nil {
				return err
			}
			jsonB, err := json.MarshalIndent(count, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonB))
			return nil
		},
	}
}

func NewListHID() *cobra.Command {
	type hidDevice struct {
		Path         string `json:"path"`
		VendorID     string `json:"vendorId"`
		ProductID    string `json:"productId"`
		Manufacturer string `json:"manufacturer"`
		Product      string `json:"product"`
	}
	return &cobra.Command{
		Use:   "list-hid",
		Short: "List HID devices",
		Long:  `List raw HID devices connected to the system, to check that the controller is present before the SpaceControl daemon claims it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := hid.Init(); err != nil {
				return err
			}
			defer hid.Exit()
			var devices []hidDevice
			err := hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
				devices = append(devices, hidDevice{
					Path:         info.Path,
					VendorID:     fmt.Sprintf("%04x", info.VendorID),
					ProductID:    fmt.Sprintf("%04x", info.ProductID),
					Manufacturer: info.MfrStr,
					Product:      info.ProductStr,
				})
				return nil
			})
			if err != nil {
				return err
			}
			jsonB, err := json.MarshalIndent(devices, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonB))
			return nil
		},
	}
}

func NewDecodeEvent() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-event <value>",
		Short: "Decode an event field value",
		Long:  `Decode a raw event field value as reported by the SpaceControl daemon. Accepts decimal or 0x-prefixed hex.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid event value %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), scontrol.DescribeEvent(int32(v)))
			return nil
		},
	}
}
