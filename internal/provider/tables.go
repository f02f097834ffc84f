package provider

// Static vocabularies drawn with the generator's rng.

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "Nashville", "Detroit", "Portland", "Las Vegas",
	"London", "Paris", "Tokyo", "Berlin", "Madrid",
	"Rome", "Amsterdam", "Vienna", "Prague", "Barcelona",
	"Munich", "Milan", "Stockholm", "Copenhagen", "Oslo",
	"Moscow", "Saint Petersburg", "Kazan", "Novosibirsk",
}

var countries = []string{
	"United States", "United Kingdom", "Germany", "France", "Spain",
	"Italy", "Netherlands", "Austria", "Czech Republic", "Poland",
	"Sweden", "Denmark", "Norway", "Finland", "Japan",
	"Canada", "Australia", "Brazil", "Russia", "India",
}

var companies = []string{
	"Acme Systems", "Globex Dynamics", "Initech Solutions", "Umbra Labs",
	"Vertex Analytics", "Northwind Trading", "Pioneer Digital", "Quantum Works",
	"Stellar Logistics", "Apex Security", "Cascade Networks", "Meridian Group",
	"Orbit Software", "Summit Industries", "Helix Technologies", "Atlas Consulting",
}

var jobTitles = []string{
	"Software Engineer", "Security Analyst", "Systems Administrator",
	"Database Administrator", "DevOps Engineer", "QA Engineer",
	"Product Manager", "Data Scientist", "Network Engineer",
	"Support Specialist", "Accountant", "Sales Manager",
	"HR Manager", "Marketing Specialist", "Technical Writer",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:123.0) Gecko/20100101 Firefox/123.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_3 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"curl/8.4.0",
	"python-requests/2.31.0",
}

var fileDirs = []string{
	"/home/user/documents", "/var/log", "/tmp/uploads", "/opt/data",
	"/usr/share/reports", "/srv/files", "/home/user/downloads",
}

var fileExts = []string{".txt", ".pdf", ".csv", ".log", ".docx", ".xlsx", ".json", ".xml"}
