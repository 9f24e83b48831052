package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/pkg/button"
	"github.com/vango-dev/commonui/pkg/render"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// buttonFlags are the props flags shared by render and preview.
type buttonFlags struct {
	typ       string
	mode      string
	label     string
	icon      string
	small     bool
	fullWidth bool
	disabled  bool
	waiting   bool
}

func (f *buttonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.typ, "type", "t", "Primary", "Button type")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Background mode (default Normal)")
	cmd.Flags().StringVarP(&f.label, "label", "l", "", "Label text")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Icon name")
	cmd.Flags().BoolVar(&f.small, "small", false, "Use the small height")
	cmd.Flags().BoolVar(&f.fullWidth, "full-width", false, "Stretch to the container width")
	cmd.Flags().BoolVar(&f.disabled, "disabled", false, "Render disabled")
	cmd.Flags().BoolVar(&f.waiting, "waiting", false, "Render the loading indicator")
}

// props parses the flags into button props.
func (f *buttonFlags) props() (button.Props, error) {
	t, err := button.ParseType(f.typ)
	if err != nil {
		return button.Props{}, err
	}
	m, err := button.ParseBackgroundMode(f.mode)
	if err != nil {
		return button.Props{}, err
	}
	return button.Props{
		Type:           t,
		BackgroundMode: m,
		Label:          f.label,
		Icon:           vdom.IconType(f.icon),
		Small:          f.small,
		FullWidth:      f.fullWidth,
		Disabled:       f.disabled,
		Waiting:        f.waiting,
		OnClick:        func() {},
	}, nil
}

func renderCmd(load configLoader) *cobra.Command {
	var (
		flags    buttonFlags
		platform string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one button as HTML",
		Long: `Render one button as an HTML fragment with inline styles.

Examples:
  commonui render --type Danger --label Delete
  commonui render -t PrimaryColoredBackground -m Red -l Send --small
  commonui render -t Secondary -l Save --waiting --platform mobile --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			p, err := platformFor(platform, cfg)
			if err != nil {
				return err
			}
			props, err := flags.props()
			if err != nil {
				return err
			}
			node, err := button.Render(p, props)
			if err != nil {
				return err
			}

			html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(node)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Style platform (default from commonui.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
