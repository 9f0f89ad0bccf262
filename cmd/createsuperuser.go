package cmd

import (
	"context"

	"example.com/travelagency/config"
	"example.com/travelagency/internal/database"
	"example.com/travelagency/internal/repository"
	"example.com/travelagency/internal/service"

	"github.com/spf13/cobra"
)

var (
	superuserUsername   string
	superuserFirstName  string
	superuserLastName   string
	superuserMiddleName string
	superuserPassword   string
)

// createSuperuserCmd represents the createsuperuser command
var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a back-office superuser",
	Long: `Creates an employee with full back-office access. Use this to
bootstrap the first staff account after running migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCreateSuperuser()
	},
}

func init() {
	rootCmd.AddCommand(createSuperuserCmd)

	createSuperuserCmd.Flags().StringVar(&superuserUsername, "username", "", "login name for the new superuser")
	createSuperuserCmd.Flags().StringVar(&superuserFirstName, "firstname", "", "first name")
	createSuperuserCmd.Flags().StringVar(&superuserLastName, "lastname", "", "last name")
	createSuperuserCmd.Flags().StringVar(&superuserMiddleName, "middlename", "", "middle name")
	createSuperuserCmd.Flags().StringVar(&superuserPassword, "password", "", "password")

	createSuperuserCmd.MarkFlagRequired("username")
	createSuperuserCmd.MarkFlagRequired("password")
}

func runCreateSuperuser() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := repository.NewRepository(db)
	svc := service.NewService(service.ServiceConfig{
		Repo:   repo,
		Logger: log,
	})

	employee, err := svc.CreateSuperuser(
		context.Background(),
		superuserUsername,
		superuserFirstName,
		superuserLastName,
		superuserMiddleName,
		superuserPassword,
	)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	log.WithField("username", employee.Username).Info("Superuser created")
}
