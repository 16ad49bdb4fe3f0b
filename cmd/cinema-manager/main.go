package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"cinema-manager/internal/cinema"
	"cinema-manager/internal/config"
	"cinema-manager/internal/csvstore"
	"cinema-manager/internal/logger"
	"cinema-manager/internal/models"
	"cinema-manager/internal/repository"
	"cinema-manager/internal/users"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Logs.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	store := csvstore.NewStore()
	in := bufio.NewScanner(os.Stdin)

	userService := users.NewUserService(repository.NewUserRepository(), store, log)
	if err := userService.ImportUsers(cfg.Data.UsersFile); err != nil {
		log.Fatal("IMPORT", err.Error())
	}

	if !authentication(in, userService, cfg.Data.UsersFile) {
		return
	}

	service := cinema.NewCinemaService(
		repository.NewMovieRepository(),
		repository.NewSessionRepository(),
		repository.NewTicketRepository(),
		store, log)
	if cfg.QR.Enabled {
		service.EnableQR(cfg.QR.SecretKey, cfg.QR.OutputDir)
	}

	if err := service.ImportData(cfg.Data.MoviesFile, cfg.Data.SessionsFile, cfg.Data.TicketsFile); err != nil {
		log.Fatal("IMPORT", err.Error())
	}

	mainMenu(in, service, cfg)
}

// authentication runs the login/register loop. It returns false when
// the user chooses to exit without logging in.
func authentication(in *bufio.Scanner, service *users.UserService, usersFile string) bool {
	for {
		fmt.Println("1. Login")
		fmt.Println("2. Register")
		fmt.Println("3. Exit program")

		switch promptInt(in, "Enter your choice: ") {
		case 1:
			username := prompt(in, "Enter username: ")
			password := prompt(in, "Enter password: ")
			if service.Authenticate(username, password) {
				color.Green("Authentication successful. Access granted.\n")
				return true
			}
			color.Red("Authentication failed. Please try again.\n")
		case 2:
			username := prompt(in, "Enter new username: ")
			password := prompt(in, "Enter new password: ")
			if err := service.Register(username, password); err != nil {
				color.Red("Registration failed: %v\n", err)
				continue
			}
			if err := service.ExportUsers(usersFile); err != nil {
				color.Red("Failed to save users: %v\n", err)
				continue
			}
			color.Green("User registered successfully. Please login.\n")
		case 3:
			fmt.Println("Exiting the program")
			return false
		default:
			color.Red("Invalid choice. Please enter a valid option.\n")
		}
	}
}

func mainMenu(in *bufio.Scanner, service *cinema.CinemaService, cfg *config.Config) {
	for {
		fmt.Println("1. Browse Movies")
		fmt.Println("2. Edit Movie or Session")
		fmt.Println("3. Exit")

		switch promptInt(in, "\nEnter your choice: ") {
		case 1:
			browseMovies(in, service)
		case 2:
			editMovieOrSession(in, service)
		case 3:
			if err := service.ExportData(cfg.Data.MoviesFile, cfg.Data.SessionsFile, cfg.Data.TicketsFile); err != nil {
				color.Red("Failed to save data: %v", err)
				continue
			}
			fmt.Println("Data updated to files.\nExiting the application.")
			return
		default:
			color.Red("Invalid choice. Please enter a valid option.")
		}
	}
}

func browseMovies(in *bufio.Scanner, service *cinema.CinemaService) {
	color.Cyan("\nAvailable Movies:")
	for _, m := range service.GetMovies() {
		fmt.Printf("\n%s. %s\n", m.ID, m.Title)
		fmt.Printf("Description: %s, with Duration %d min\n", m.Description, m.Duration)
	}

	movieID := prompt(in, "Enter the movie ID to view sessions: ")
	sessions := service.GetSessionsByMovieID(movieID)
	if len(sessions) == 0 {
		color.Red("No sessions available for the selected movie.")
		return
	}

	color.Cyan("Sessions for %s:", sessions[0].Movie.Title)
	for _, s := range sessions {
		fmt.Printf("%s. %s\n", s.ID, s.ShowingTime.Format(models.ShowingTimeLayout))
	}

	sessionID := prompt(in, "\nEnter the session ID to manage tickets: ")
	seats, err := service.AvailableSeats(sessionID)
	if err != nil {
		color.Red("Invalid session ID.")
		return
	}
	fmt.Printf("Available Seats: %v\n", seats)

	fmt.Println("\n1. Book a ticket")
	fmt.Println("2. Refund a ticket")
	switch promptInt(in, "\nEnter your choice: ") {
	case 1:
		bookTicket(in, service, sessionID)
	case 2:
		refundTicket(in, service)
	default:
		color.Red("Invalid choice.")
	}
}

func bookTicket(in *bufio.Scanner, service *cinema.CinemaService, sessionID string) {
	seat, err := strconv.Atoi(prompt(in, "\nEnter the seat number to book: "))
	if err != nil {
		color.Red("Invalid seat number.")
		return
	}
	ticket, err := service.SellTicket(sessionID, seat)
	if err != nil {
		color.Red("Invalid seat number or seat already booked.")
		return
	}
	color.Green("Ticket sold: %s (seat %d)", ticket.ID, ticket.SeatNumber)
}

func refundTicket(in *bufio.Scanner, service *cinema.CinemaService) {
	ticketID := prompt(in, "Enter Ticket ID for Refund: ")
	if err := service.RefundTicket(ticketID); err != nil {
		color.Red("Invalid ticket ID or ticket not found.")
		return
	}
	color.Green("Ticket refunded successfully.")
}

func editMovieOrSession(in *bufio.Scanner, service *cinema.CinemaService) {
	fmt.Println("\n1. Edit Movie")
	fmt.Println("2. Edit Session")

	switch promptInt(in, "\nEnter your choice: ") {
	case 1:
		editMovie(in, service)
	case 2:
		editSession(in, service)
	default:
		color.Red("Invalid choice.")
	}
}

func editMovie(in *bufio.Scanner, service *cinema.CinemaService) {
	movieID := prompt(in, "Enter Movie ID to edit: ")
	if movieID == "" {
		color.Red("Invalid Movie ID.")
		return
	}
	title := prompt(in, "Enter new title: ")
	mtype := prompt(in, "Enter new type: ")
	duration, err := strconv.Atoi(prompt(in, "Enter new duration (minutes): "))
	if err != nil || duration <= 0 {
		color.Red("Invalid duration. Please try again.\n")
		return
	}
	description := prompt(in, "Enter new description: ")

	if err := service.EditMovie(movieID, title, mtype, duration, description); err != nil {
		color.Red("Invalid Movie ID.")
		return
	}
	color.Green("Movie edited successfully.")
}

func editSession(in *bufio.Scanner, service *cinema.CinemaService) {
	sessionID := prompt(in, "Enter Session ID to edit: ")
	if sessionID == "" {
		color.Red("Invalid Session ID.")
		return
	}
	movieID := prompt(in, "Enter new Movie ID: ")

	showingTime, err := time.Parse(models.ShowingTimeLayout, prompt(in, "Enter new showing time (dd/MM/yyyy HH:mm): "))
	if err != nil {
		color.Red("Invalid showing time format. Please use dd/MM/yyyy HH:mm.")
		return
	}

	seats, err := parseSeatList(prompt(in, "Enter new available seats (comma-separated): "))
	if err != nil {
		color.Red("Invalid available seats format.")
		return
	}

	if err := service.EditSession(sessionID, movieID, showingTime, seats); err != nil {
		color.Red("Invalid Session ID or Movie ID.")
		return
	}
	color.Green("Session edited successfully.")
}

func parseSeatList(input string) ([]int, error) {
	var seats []int
	for _, part := range strings.Split(input, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		seats = append(seats, n)
	}
	return seats, nil
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, label string) int {
	n, err := strconv.Atoi(prompt(in, label))
	if err != nil {
		return -1
	}
	return n
}
