package mockdata

import "fmt"

type category struct {
	name     string
	weight   float64
	subjects []string
	actions  []string
	images   []string
	content  func(subject, action string) string
}

var categories = []category{
	{
		name:   "politics",
		weight: 0.25,
		subjects: []string{
			"State Council", "Standing Committee", "Foreign Ministry", "Supreme Court",
			"National Development and Reform Commission", "Ministry of Finance",
			"Ministry of Public Security", "Ministry of Education", "Provincial Government",
			"Hong Kong SAR Government",
		},
		actions: []string{
			"Releases Important Policy", "Convenes High-Level Meeting", "Signs Cooperation Agreement",
			"Delivers Keynote Speech", "Proposes New Bill", "Holds Diplomatic Talks",
			"Responds to International Concerns", "Launches Special Investigation",
			"Passes Major Resolution", "Hosts International Summit",
		},
		images: []string{"government", "leaders", "protest", "meeting", "flag", "building"},
		content: func(subject, action string) string {
			return fmt.Sprintf("%s recently %s, attracting widespread attention both domestically and internationally. "+
				"Relevant experts analyze that this move will have a profound impact on international relations and regional stability. "+
				"At a press conference, the spokesperson stated that efforts will continue to advance related work.", subject, action)
		},
	},
	{
		name:   "technology",
		weight: 0.25,
		subjects: []string{
			"AI Research Team", "Quantum Computing Lab", "Aerospace Group", "EV Manufacturer",
			"5G Alliance", "Semiconductor Industry", "Big Data Center", "Cloud Provider",
			"Blockchain Company", "Biotech Lab", "Drone Research Center", "Robotics Group",
		},
		actions: []string{
			"Announces Major Breakthrough", "Develops New Technology", "Launches Innovative Product",
			"Overcomes Technical Bottleneck", "Opens Joint Laboratory", "Obtains Key Patent",
			"Publishes Industry Standard", "Completes Technology Upgrade", "Releases Research Report",
			"Wins Science Award",
		},
		images: []string{"tech", "computer", "gadget", "robot", "internet", "innovation"},
		content: func(subject, action string) string {
			return fmt.Sprintf("%s successfully %s, marking a major breakthrough in related fields. "+
				"The application of this technology will greatly enhance production efficiency and improve quality of life. "+
				"The team stated that this achievement represents years of hard work.", subject, action)
		},
	},
	{
		name:   "culture",
		weight: 0.2,
		subjects: []string{
			"National Museum", "Palace Museum", "National Ballet", "National Theatre",
			"Writers Association", "International Film Festival", "Heritage Committee",
			"Folk Music Ensemble", "Modern Art Gallery", "Archaeology Team",
		},
		actions: []string{
			"Hosts Cultural Festival", "Opens International Exchange", "Unveils New Artwork",
			"Holds Heritage Protection Campaign", "Publishes Literary Work", "Hosts Film Screening",
			"Holds Concert Series", "Launches Cultural Brand", "Organizes Cultural Forum",
			"Establishes Culture Award",
		},
		images: []string{"art", "music", "theater", "dance", "festival", "museum"},
		content: func(subject, action string) string {
			return fmt.Sprintf("%s will soon %s, bringing a cultural feast to the audience. "+
				"The event aims to promote traditional culture and facilitate cultural exchanges. "+
				"Organizers revealed that the event has been in preparation for a long time.", subject, action)
		},
	},
	{
		name:   "weather",
		weight: 0.15,
		subjects: []string{
			"Meteorological Bureau", "Typhoon Warning Center", "Rainstorm Monitoring Station",
			"Heatwave Warning Office", "Cold Wave Forecast Center", "Air Quality Station",
			"Climate Research Center", "Flood Control Headquarters", "Weather Satellite Center",
		},
		actions: []string{
			"Issues Weather Forecast", "Issues Disaster Warning", "Activates Emergency Response",
			"Monitors Extreme Weather", "Issues Heat Alert", "Issues Rainstorm Alert",
			"Issues Typhoon Alert", "Assesses Disaster Impact", "Publishes Air Quality Report",
			"Updates Climate Data",
		},
		images: []string{"rain", "snow", "storm", "sun", "cloud", "temperature"},
		content: func(subject, action string) string {
			return fmt.Sprintf("%s today %s, reminding citizens to take precautions. "+
				"Weather is expected to keep changing in the next few days, and relevant departments have activated emergency plans. "+
				"Experts suggest that the public pay close attention to official updates.", subject, action)
		},
	},
	{
		name:   "economy",
		weight: 0.15,
		subjects: []string{
			"Central Bank", "Securities Regulator", "Statistics Bureau", "World Bank",
			"International Monetary Fund", "Asian Development Bank", "State-Owned Enterprise",
			"Multinational Corporation", "Investment Bank", "Economic Think Tank",
		},
		actions: []string{
			"Economic Data Release", "Monetary Policy Adjustment", "Economic Plan",
			"Fiscal Budget", "Industry Report", "Interest Rate Decision",
			"Consumer Index", "Employment Data", "Stimulus Package", "Market Outlook",
		},
		images: []string{"money", "stock", "business", "bank", "trade", "market"},
		content: func(subject, action string) string {
			return fmt.Sprintf("%s's latest %s shows that the overall economy is stable and improving. "+
				"Analysts point out that multiple indicators have shown positive changes and market confidence is recovering. "+
				"Industry insiders expect growth to remain resilient.", subject, action)
		},
	},
}

var (
	domesticSources = []string{
		"People's Daily", "Xinhua News Agency", "CCTV", "Guangming Daily",
		"Economic Daily", "China Daily", "Science and Technology Daily", "China Youth Daily",
		"Global Times", "Legal Daily", "The Paper", "Caixin",
	}
	internationalSources = []string{
		"Reuters", "Associated Press", "AFP", "Bloomberg",
		"The Wall Street Journal", "Financial Times", "The New York Times", "The Washington Post",
		"The Guardian", "The Economist", "BBC News", "CNN",
	}
	voteComments = []string{
		"This news seems inaccurate based on my research.",
		"Great reporting, very informative.",
		"I've verified this information and it appears to be correct.",
		"There are several factual errors in this article.",
		"Important news that everyone should be aware of.",
		"This story has been manipulated to create controversy.",
		"Well-sourced and well-written piece.",
		"I have serious doubts about the credibility of this news.",
	}
	// EngagementPhrases are the short comments attached by randomized engagement.
	EngagementPhrases = []string{
		"Needs more evidence", "Looks suspicious", "Seems legitimate", "Source is reliable",
		"Unverified claim", "Eyewitness report", "Possible misinformation", "Cross-check required",
	}
)
