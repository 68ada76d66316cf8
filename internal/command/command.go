package command

import (
	"context"
	"fmt"

	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/service"

	"github.com/google/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCommand)

type Command struct {
	logger        *zap.Logger
	authService   *service.AuthService
	salaryService *service.SalaryService
}

// NewCommand .
func NewCommand(
	logger *zap.Logger,
	authService *service.AuthService,
	salaryService *service.SalaryService,
) *Command {
	return &Command{
		logger:        logger,
		authService:   authService,
		salaryService: salaryService,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var (
		email    string
		name     string
		password string
	)
	createAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "建立管理員帳號",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.CreateAdmin(cmd, &dto.CreateAdminDto{Email: email, Name: name, Password: password})
		},
	}
	createAdmin.Flags().StringVar(&email, "email", "", "admin email")
	createAdmin.Flags().StringVar(&name, "name", "", "admin name")
	createAdmin.Flags().StringVar(&password, "password", "", "admin password")
	_ = createAdmin.MarkFlagRequired("email")
	_ = createAdmin.MarkFlagRequired("password")

	rootCmd.AddCommand(
		createAdmin,
		&cobra.Command{
			Use:   "recalculate-salaries",
			Short: "重算所有未付計件薪資",
			RunE: func(cmd *cobra.Command, args []string) error {
				command, cleanup, err := newCmd()
				if err != nil {
					return err
				}
				defer cleanup()

				return command.RecalculateSalaries(cmd)
			},
		},
	)
}

func (c *Command) CreateAdmin(cmd *cobra.Command, req *dto.CreateAdminDto) error {
	if req.Name == "" {
		req.Name = "Admin"
	}
	user, err := c.authService.CreateAdmin(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("create admin: %s", cErr.From(err).ErrorDesc())
	}
	c.logger.Info("admin created", zap.String("id", user.ID), zap.String("email", user.Email))
	cmd.Printf("admin %s created (%s)\n", user.Email, user.ID)
	return nil
}

func (c *Command) RecalculateSalaries(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := c.salaryService.RecalculateAll(ctx)
	if err != nil {
		return fmt.Errorf("recalculate salaries: %w", err)
	}
	cmd.Printf("scanned %d unpaid salaries, updated %d\n", res.Scanned, res.Updated)
	return nil
}
