package startup

// SampleData returns the seed records used by setup and quickstart.
func SampleData() []Startup {
	return []Startup{
		{
			Name:        "OpenAI",
			FoundedYear: 2015,
			Country:     "USA",
			City:        "San Francisco",
			Industry:    []string{"AI", "Machine Learning"},
			FundingRounds: []FundingRound{
				{Round: "Seed", AmountUSD: 120000000, Date: "2015-12-11"},
				{Round: "Series A", AmountUSD: 1000000000, Date: "2019-07-22"},
			},
			Investors:       []string{"Khosla Ventures", "Microsoft", "Reid Hoffman"},
			TotalFundingUSD: 1120000000,
			EmployeeCount:   500,
			Status:          "Operating",
		},
		{
			Name:        "Stripe",
			FoundedYear: 2010,
			Country:     "USA",
			City:        "San Francisco",
			Industry:    []string{"FinTech", "Payments"},
			FundingRounds: []FundingRound{
				{Round: "Series A", AmountUSD: 2000000, Date: "2011-05-01"},
				{Round: "Series B", AmountUSD: 20000000, Date: "2012-07-01"},
				{Round: "Series C", AmountUSD: 80000000, Date: "2014-01-01"},
			},
			Investors:       []string{"Sequoia Capital", "Andreessen Horowitz", "Elon Musk"},
			TotalFundingUSD: 2200000000,
			EmployeeCount:   7000,
			Status:          "Operating",
		},
		{
			Name:        "Revolut",
			FoundedYear: 2015,
			Country:     "UK",
			City:        "London",
			Industry:    []string{"FinTech", "Banking"},
			FundingRounds: []FundingRound{
				{Round: "Seed", AmountUSD: 1000000, Date: "2015-07-01"},
				{Round: "Series A", AmountUSD: 10000000, Date: "2016-07-01"},
				{Round: "Series B", AmountUSD: 66000000, Date: "2017-07-01"},
				{Round: "Series C", AmountUSD: 250000000, Date: "2018-04-01"},
			},
			Investors:       []string{"Index Ventures", "Balderton Capital", "DST Global"},
			TotalFundingUSD: 916000000,
			EmployeeCount:   5000,
			Status:          "Operating",
		},
		{
			Name:        "Grab",
			FoundedYear: 2012,
			Country:     "Singapore",
			City:        "Singapore",
			Industry:    []string{"Transportation", "FinTech"},
			FundingRounds: []FundingRound{
				{Round: "Series A", AmountUSD: 10000000, Date: "2013-01-01"},
				{Round: "Series B", AmountUSD: 90000000, Date: "2014-12-01"},
				{Round: "Series F", AmountUSD: 2500000000, Date: "2018-03-01"},
			},
			Investors:       []string{"SoftBank", "Toyota", "Microsoft"},
			TotalFundingUSD: 12300000000,
			EmployeeCount:   8000,
			Status:          "Operating",
		},
		{
			Name:        "Nubank",
			FoundedYear: 2013,
			Country:     "Brazil",
			City:        "São Paulo",
			Industry:    []string{"FinTech", "Banking"},
			FundingRounds: []FundingRound{
				{Round: "Series A", AmountUSD: 14600000, Date: "2014-01-01"},
				{Round: "Series B", AmountUSD: 30000000, Date: "2014-10-01"},
				{Round: "Series G", AmountUSD: 400000000, Date: "2019-07-01"},
			},
			Investors:       []string{"Sequoia Capital", "Tiger Global", "Tencent"},
			TotalFundingUSD: 2100000000,
			EmployeeCount:   4000,
			Status:          "Operating",
		},
	}
}
