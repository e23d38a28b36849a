package cmd

// Config carries everything the app needs from the environment: database
// connection, HTTP port, SMTP credentials for confirmation emails, the S3
// bucket for product images and the checkout lead-time floor.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	S3Bucket     string
	S3Region     string
	MinPrepDays  int
}
