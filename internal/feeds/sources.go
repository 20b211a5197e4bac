package feeds

// DefaultSources is the curated list of corporate newsrooms we aggregate.
// Feed-like URLs (.xml, /feed, /rss) get an RSS attempt first; the rest are
// scraped straight from the listing page.
var DefaultSources = []Source{
	{Company: "OpenAI", FeedURL: "https://openai.com/news/rss.xml", Homepage: "https://openai.com/news"},
	{Company: "Anthropic", FeedURL: "https://www.anthropic.com/news", Homepage: "https://www.anthropic.com/news"},
	{Company: "xAI", FeedURL: "https://x.ai/news", Homepage: "https://x.ai/news"},
	{Company: "Spotify", FeedURL: "https://newsroom.spotify.com/feed/", Homepage: "https://newsroom.spotify.com"},
	{Company: "Microsoft", FeedURL: "https://blogs.microsoft.com/feed/", Homepage: "https://blogs.microsoft.com"},
	{Company: "Google", FeedURL: "https://blog.google/rss/", Homepage: "https://blog.google"},
	{Company: "Minecraft", FeedURL: "https://www.minecraft.net/en-us/articles", Homepage: "https://www.minecraft.net/en-us/articles"},
	{Company: "Disney", FeedURL: "https://thewaltdisneycompany.com/feed/", Homepage: "https://thewaltdisneycompany.com"},
	{Company: "Netflix", FeedURL: "https://about.netflix.com/en/newsroom", Homepage: "https://about.netflix.com/en/newsroom"},
	{Company: "Amazon", FeedURL: "https://www.aboutamazon.com/news", Homepage: "https://www.aboutamazon.com/news"},
	{Company: "Paramount", FeedURL: "https://www.paramount.com/news", Homepage: "https://www.paramount.com/news"},
	{Company: "Warner Bros", FeedURL: "https://www.warnerbrosdiscovery.com/news-and-insights", Homepage: "https://www.warnerbrosdiscovery.com/news-and-insights"},
}
