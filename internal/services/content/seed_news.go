package content

import (
	"time"

	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/models"
)

// builtinArticles is the baseline news corpus. PublishDate values are
// staggered backwards from now and restaggered by the refresh job.
func builtinArticles(now time.Time) []*models.NewsArticle {
	return []*models.NewsArticle{
		{
			ID:      common.NewArticleID(),
			Title:   "AI Chip Demand Surges as Tech Giants Race to Build Intelligent Systems",
			Summary: "Major technology companies are investing billions in AI infrastructure, driving unprecedented demand for specialized semiconductors and creating supply chain bottlenecks across the industry.",
			Content: "The artificial intelligence revolution is reshaping the semiconductor industry as tech giants pour unprecedented resources into building intelligent systems. NVIDIA, AMD, and Intel are all reporting record demand for AI-optimized chips, with delivery times extending well into 2025.\n\nThe surge is being driven by companies like Microsoft, Google, and Amazon, who are rapidly expanding their cloud infrastructure to support AI workloads. OpenAI's GPT models alone require thousands of specialized chips to operate at scale.\n\n'We're seeing demand that exceeds anything we've experienced in the past decade,' said Jensen Huang, CEO of NVIDIA, during the company's latest earnings call. The chip maker's data center revenue grew 200% year-over-year, primarily driven by AI applications.\n\nThe bottleneck is creating ripple effects across the tech industry, with some companies delaying product launches while others are exploring alternative chip architectures. This has opened opportunities for emerging players in the semiconductor space.",
			Author:  "Sarah Chen", Category: "Technology",
			PublishDate: now.Add(-2 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"AI", "Semiconductors", "NVIDIA", "Technology", "Supply Chain"},
			ReadTime:    4,
		},
		{
			ID:      common.NewArticleID(),
			Title:   "Federal Reserve Signals Potential Rate Cuts as Inflation Shows Signs of Cooling",
			Summary: "Recent economic data suggests inflation is moderating faster than expected, prompting Fed officials to hint at possible interest rate reductions in the coming months.",
			Content: "Federal Reserve Chairman Jerome Powell indicated today that the central bank may consider lowering interest rates sooner than previously anticipated, citing encouraging inflation data and concerns about economic growth.\n\nCore inflation dropped to 3.2% in the latest reading, down from a peak of 9.1% in 2022. This marks the sixth consecutive month of declining inflation, bringing it closer to the Fed's 2% target.\n\n'We're seeing clear progress on inflation while the labor market remains resilient,' Powell said during testimony before Congress. 'This gives us flexibility to adjust our monetary policy stance as conditions warrant.'\n\nMarkets rallied on the news, with the S&P 500 gaining 1.8% and bond yields falling across the curve. Interest rate futures now price in a 75% probability of a rate cut at the Fed's next meeting.\n\nEconomists are divided on the timing, with some arguing that premature cuts could reignite inflation, while others worry that keeping rates too high could trigger a recession.",
			Author:  "Michael Rodriguez", Category: "Financial",
			PublishDate: now.Add(-5 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Federal Reserve", "Interest Rates", "Inflation", "Economy", "Markets"},
			ReadTime:    5,
		},
		{
			ID:      common.NewArticleID(),
			Title:   "Electric Vehicle Sales Slow as Market Matures and Competition Intensifies",
			Summary: "EV adoption is entering a new phase as early adopters are saturated and traditional automakers launch competitive models, pressuring Tesla's market dominance.",
			Content: "Electric vehicle sales growth is decelerating across major markets as the industry transitions from rapid early adoption to mainstream competition. Tesla, once the undisputed leader, now faces formidable challengers from traditional automakers.\n\nGlobal EV sales grew 18% in Q3, down from 45% growth in the same period last year. The slowdown reflects market saturation among early adopters and increased competition from Ford, GM, Volkswagen, and Chinese manufacturers like BYD.\n\n'The easy growth phase is over,' said automotive analyst Emma Thompson. 'Now it's about winning over mainstream consumers who care more about price, reliability, and charging infrastructure than cutting-edge technology.'\n\nTesla's market share in the US has dropped to 48% from 72% two years ago, though the company remains profitable and continues to expand globally. CEO Elon Musk acknowledged the challenges but emphasized Tesla's advantages in manufacturing scale and autonomous driving technology.\n\nThe industry is also grappling with supply chain constraints for battery materials and the need for expanded charging infrastructure to support mass adoption.",
			Author:  "David Kim", Category: "Industry News",
			PublishDate: now.Add(-8 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1593941707882-a5bac6861d75?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Electric Vehicles", "Tesla", "Automotive", "Competition", "Market Share"},
			ReadTime:    6,
		},
		{
			ID:      common.NewArticleID(),
			Title:   "Cloud Computing Giants Report Strong Q4 Results Despite Economic Headwinds",
			Summary: "Amazon Web Services, Microsoft Azure, and Google Cloud all exceeded expectations as enterprises accelerate digital transformation initiatives.",
			Content: "The three major cloud computing platforms delivered robust fourth-quarter results, demonstrating the resilience of enterprise technology spending despite broader economic uncertainty.\n\nAmazon Web Services (AWS) reported 29% revenue growth to $24.2 billion, while Microsoft Azure grew 31% and Google Cloud expanded 35%. The strong performance reflects accelerating enterprise adoption of AI and machine learning services.\n\n'Enterprises are viewing cloud and AI not as optional investments but as competitive necessities,' said Satya Nadella, Microsoft's CEO. The company's AI-powered services, including GitHub Copilot and Office 365 enhancements, are driving significant customer engagement.\n\nGoogle Cloud's standout performance was attributed to its AI offerings, including the Gemini large language model and enterprise AI tools. The division is approaching profitability after years of heavy investment.\n\nAWS, while growing at a slower pace than competitors, maintains the largest market share at approximately 32%. The platform is benefiting from increased demand for machine learning and data analytics services.\n\nAnalysts expect the cloud wars to intensify as artificial intelligence becomes the primary battleground for customer acquisition and retention.",
			Author:  "Jennifer Liu", Category: "Technology",
			PublishDate: now.Add(-12 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Cloud Computing", "AWS", "Microsoft", "Google", "AI", "Enterprise"},
			ReadTime:    5,
		},
		{
			ID:      common.NewArticleID(),
			Title:   "Bitcoin ETF Approvals Drive Cryptocurrency Mainstream Adoption",
			Summary: "The approval of spot Bitcoin ETFs by major financial institutions is bringing cryptocurrency investment to traditional portfolios and retail investors.",
			Content: "The cryptocurrency market reached a significant milestone with the approval and launch of spot Bitcoin exchange-traded funds (ETFs) from major financial institutions including BlackRock, Fidelity, and Grayscale.\n\nSince launching three months ago, these ETFs have attracted over $15 billion in assets, demonstrating strong institutional and retail demand for cryptocurrency exposure through traditional investment vehicles.\n\n'This represents a paradigm shift in how investors access Bitcoin,' said Matthew Sigel, head of digital assets research at VanEck. 'We're seeing pension funds, family offices, and retail advisors allocating to Bitcoin for the first time.'\n\nThe ETF launches have contributed to Bitcoin's price appreciation, with the cryptocurrency gaining 45% since the beginning of the year. Daily trading volumes have increased substantially, indicating growing market participation.\n\nTraditional financial advisors, previously hesitant to recommend cryptocurrency investments, are now incorporating Bitcoin ETFs into client portfolios as a hedge against inflation and currency debasement.\n\nRegulatory clarity continues to improve, with the SEC providing clearer guidelines for cryptocurrency investments and several other crypto ETF applications under review.",
			Author:  "Alex Morgan", Category: "Financial",
			PublishDate: now.Add(-18 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Bitcoin", "ETF", "Cryptocurrency", "Investment", "BlackRock", "Regulation"},
			ReadTime:    4,
		},
		{
			ID:      common.NewArticleID(),
			Title:   "Renewable Energy Investments Reach Record Highs as Climate Goals Drive Policy",
			Summary: "Global investments in renewable energy infrastructure are accelerating as governments implement aggressive climate policies and costs continue to decline.",
			Content: "Investment in renewable energy reached a record $1.8 trillion globally in 2024, driven by government climate commitments, declining technology costs, and growing corporate sustainability mandates.\n\nSolar and wind projects accounted for 85% of new energy capacity additions, with solar installations alone growing 35% year-over-year. The International Energy Agency projects renewables will account for 95% of new power generation through 2030.\n\n'We're witnessing the fastest energy transition in human history,' said Dr. Fatih Birol, IEA Executive Director. 'The economics now favor renewable energy in virtually every market globally.'\n\nThe United States' Inflation Reduction Act has spurred $200 billion in clean energy investments, while the European Union's Green Deal is mobilizing €1 trillion for climate initiatives. China continues to dominate manufacturing of solar panels and wind turbines.\n\nEnergy storage technologies are advancing rapidly, with battery costs falling 70% over the past five years. This is enabling greater grid integration of intermittent renewable sources.\n\nTraditional energy companies are adapting their business models, with many oil and gas giants investing heavily in renewable projects and carbon capture technologies.",
			Author:  "Emily Zhang", Category: "Industry News",
			PublishDate: now.Add(-24 * time.Hour),
			ImageURL:    "https://images.unsplash.com/photo-1466611653911-95081537e5b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Tags:        []string{"Renewable Energy", "Climate Change", "Investment", "Solar", "Wind", "Policy"},
			ReadTime:    7,
		},
	}
}
