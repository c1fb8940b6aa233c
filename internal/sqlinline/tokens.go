package sqlinline

const QSelectIntegrationToken = `--sql 1dc57b92-e384-4f01-ba6c-20d9f5a78e36
select token
from integration_tokens
where provider = $1
limit 1;
`

const QUpsertIntegrationToken = `--sql 72f8a4c0-95de-4613-8b27-c1e6049d83f5
insert into integration_tokens (provider, token, properties, updated_at)
values ($1, $2, $3, now())
on conflict (provider) do update
set token = excluded.token,
    properties = excluded.properties,
    updated_at = now();
`
