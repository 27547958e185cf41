// portfolioctl 用于在命令行下手动验证会话签发与内容源配置。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/auth"
	"github.com/zhouzirui/folio/backend/internal/config"
	"github.com/zhouzirui/folio/backend/internal/logging"
	"github.com/zhouzirui/folio/backend/internal/service/chat"
	"github.com/zhouzirui/folio/backend/internal/service/content"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	timeout time.Duration
	userID  string
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Inspect the portfolio backend's chat and content wiring",
	Long: `portfolioctl loads the same environment as the API server (.env included)
and runs one operation against the configured providers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Printf("[WARN] 无法加载 .env，改用系统环境变量: %v", err)
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("配置加载失败: %w", err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.Log.Level)
		return err
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create a chat widget session and print the credential",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		if userID != "" {
			ctx = auth.WithUserID(ctx, userID)
		}

		svc := chat.NewService(cfg.Chat, logger)
		cred, err := svc.CreateSession(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), cred)
	},
}

var sectionCmd = &cobra.Command{
	Use:   "section <name>",
	Short: "Fetch one page section from the configured content source",
	Example: `  portfolioctl section projects
  portfolioctl section hero`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		source, err := content.NewSource(cfg.Content, logger)
		if err != nil {
			return err
		}
		res, err := content.NewService(source, logger).Section(ctx, args[0])
		if err != nil {
			return err
		}
		if res.Empty() {
			fmt.Fprintf(cmd.ErrOrStderr(), "section %q is empty\n", args[0])
			return nil
		}
		return printJSON(cmd.OutOrStdout(), res.Data)
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	sessionCmd.Flags().StringVar(&userID, "user", "", "signed-in user id (defaults to a guest id)")

	rootCmd.AddCommand(sessionCmd, sectionCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
