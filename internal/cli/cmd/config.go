package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, validate and document the configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long:  `Load the config file the way the viewer does and report every invalid setting.`,
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Write config.schema.json into the config directory. Editors with
TOML schema support use it for completion and validation.`,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List configuration keys with their defaults",
	Long: `List every configuration key with its type, default and allowed values.

Sections: lightbox, gallery, keybindings, logging, appearance.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)

	configKeysCmd.Flags().Bool("json", false, "Print keys as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(configFile)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigPath(configFile, statErr == nil))
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if app.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderValidationErrors(app.ConfigErr))
		return fmt.Errorf("invalid configuration")
	}

	path := ""
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}
	fmt.Fprintln(out, renderer.RenderValid(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	path, err := config.WriteSchemaFile(filepath.Dir(configFile))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.GetConfigSchemaInput{}
	if len(args) > 0 {
		input.Section = args[0]
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}
	if len(result.Keys) == 0 {
		return fmt.Errorf("no config keys in section %q", input.Section)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
