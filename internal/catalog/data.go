package catalog

// builtinRegions is the process-wide region table.
var builtinRegions = []Region{
	{
		Key:          "USA",
		FirstNames:   []string{"John", "Jane", "Michael", "Emily", "Chris", "Jessica", "David", "Sarah"},
		Surnames:     []string{"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller"},
		Cities:       []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"},
		StreetTypes:  []string{"St", "Ave", "Blvd", "Rd", "Dr"},
		PhoneFormats: []string{"(###) ###-####", "###-###-####"},
	},
	{
		Key:          "Poland",
		FirstNames:   []string{"Jan", "Anna", "Piotr", "Kasia", "Tomasz", "Ewa", "Jakub", "Zofia"},
		Surnames:     []string{"Kowalski", "Nowak", "Wojciechowski", "Kwiatkowski", "Zieliński"},
		Cities:       []string{"Warsaw", "Krakow", "Wrocław", "Gdańsk", "Poznań"},
		StreetTypes:  []string{"Ulica", "Aleja"},
		PhoneFormats: []string{"###-###-###", "+48 ### ### ###"},
	},
	{
		Key:          "Georgia",
		FirstNames:   []string{"Giorgi", "Nino", "David", "Ana", "Levan", "Salome"},
		Surnames:     []string{"Beridze", "Tsiklauri", "Kobakhidze", "Kurdiani"},
		Cities:       []string{"Tbilisi", "Batumi", "Rustavi", "Zugdidi"},
		StreetTypes:  []string{"Street"},
		PhoneFormats: []string{"+995 ### ### ###"},
	},
}
